package cobertura

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T) *reportParser {
	logger, err := testutils.GetLogger()
	if err != nil {
		fmt.Printf("Couldn't initialise logger, error: %v", err)
	}
	return &reportParser{logger: logger}
}

func Test_reportParser_Parse(t *testing.T) {
	p := newParser(t)

	report, err := p.Parse("testdata/cobertura.xml")
	require.NoError(t, err)

	want := []core.FileEntry{
		{ReportedPath: "src/Foo.scala", LineHits: map[int]int{1: 0, 3: 2}},
		{ReportedPath: "src/Shared.scala", LineHits: map[int]int{10: 5, 11: 0, 12: 1}},
		{ReportedPath: "src/empty/Marker.scala", LineHits: map[int]int{}},
	}
	assert.Equal(t, want, report.Files)
}

func Test_reportParser_ParseZeroHitsAreExplicit(t *testing.T) {
	p := newParser(t)

	report, err := p.Parse("testdata/cobertura.xml")
	require.NoError(t, err)

	hits, ok := report.Files[0].LineHits[1]
	assert.True(t, ok)
	assert.Equal(t, 0, hits)
	_, ok = report.Files[0].LineHits[2]
	assert.False(t, ok)
}

func Test_reportParser_ParseDeclaredCharset(t *testing.T) {
	p := newParser(t)

	report, err := p.Parse("testdata/latin1.xml")
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "src/Café.scala", report.Files[0].ReportedPath)
	assert.Equal(t, map[int]int{1: 4}, report.Files[0].LineHits)
}

func Test_reportParser_ParseMissingReport(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("testdata/dne.xml")
	var missing *errs.ReportMissingError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "testdata/dne.xml", missing.Path)
}

func Test_reportParser_parseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not xml", `coverage?`},
		{"unterminated", `<coverage><packages>`},
		{"wrong root", `<report><packages/></report>`},
		{"no packages", `<coverage/>`},
		{"class without filename", `<coverage><packages><package><classes><class name="C"/></classes></package></packages></coverage>`},
		{"line without hits", `<coverage><packages><package><classes><class filename="a.go"><lines><line number="1"/></lines></class></classes></package></packages></coverage>`},
		{"negative hits", `<coverage><packages><package><classes><class filename="a.go"><lines><line number="1" hits="-1"/></lines></class></classes></package></packages></coverage>`},
		{"line number zero", `<coverage><packages><package><classes><class filename="a.go"><lines><line number="0" hits="1"/></lines></class></classes></package></packages></coverage>`},
	}
	p := newParser(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.parse("report.xml", strings.NewReader(tt.doc))
			var malformed *errs.MalformedReportError
			assert.True(t, errors.As(err, &malformed), "got %v", err)
		})
	}
}

func Test_reportParser_parseEmptyPackages(t *testing.T) {
	p := newParser(t)

	report, err := p.parse("report.xml", strings.NewReader(`<coverage><packages/></coverage>`))
	require.NoError(t, err)
	assert.Empty(t, report.Files)
}

func Test_reportParser_ParseMultiModuleReport(t *testing.T) {
	p := newParser(t)
	path, err := testutils.Path(testutils.CoberturaReportPath)
	require.NoError(t, err)

	report, err := p.Parse(path)
	require.NoError(t, err)

	require.Len(t, report.Files, 4)
	// method level lines repeat the class lines and are not counted twice
	assert.Equal(t, map[int]int{1: 1, 3: 6, 4: 0}, report.Files[0].LineHits)
	assert.Equal(t, "com/acme/api/Routes.scala", report.Files[1].ReportedPath)
	assert.Equal(t, "com/acme/api/generated/Stub.scala", report.Files[2].ReportedPath)
}
