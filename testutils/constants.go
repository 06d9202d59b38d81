package testutils

// Various constant defined for to obtain dummy data for tests
const (
	CoberturaReportPath = "/testutils/testdata/cobertura.xml"      // CoberturaReportPath points to a multi module cobertura report
	ConfigPath          = "/testutils/testdata/sample_config.json" // ConfigPath points to a reporter config file in json format
)
