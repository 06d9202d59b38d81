package config

import (
	"github.com/LambdaTest/coveralls-reporter/pkg/global"
	"github.com/spf13/viper"
)

func setReporterDefaultConfig() {
	viper.SetDefault("LogConfig.EnableConsole", true)
	viper.SetDefault("LogConfig.ConsoleJSONFormat", false)
	viper.SetDefault("LogConfig.ConsoleLevel", "info")
	viper.SetDefault("LogConfig.EnableFile", false)
	viper.SetDefault("LogConfig.FileJSONFormat", true)
	viper.SetDefault("LogConfig.FileLevel", "debug")
	viper.SetDefault("LogConfig.FileLocation", "./coveralls.log")
	viper.SetDefault("reportPath", "target/site/cobertura/coverage.xml")
	viper.SetDefault("sourceRoots", []string{"src/main/java"})
	viper.SetDefault("repoRoot", ".")
	viper.SetDefault("gitRepo", ".")
	viper.SetDefault("encoding", global.DefaultEncoding)
	viper.SetDefault("workers", 1)
	viper.SetDefault("maxRetries", 0)
	viper.SetDefault("httpTimeout", global.DefaultHTTPTimeout)
	viper.SetDefault("Verbose", false)
}
