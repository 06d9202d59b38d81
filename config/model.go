package config

import (
	"time"

	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
)

// Model definition for configuration

// ReporterConfig is the application's configuration
type ReporterConfig struct {
	Config      string
	ReportPath  string        `json:"reportPath" validate:"required"`
	SourceRoots []string      `json:"sourceRoots" validate:"min=1,dive,required"`
	RepoRoot    string        `json:"repoRoot"`
	Encoding    string        `json:"encoding" validate:"charset"`
	PayloadPath string        `json:"payloadPath"`
	Endpoint    string        `json:"endpoint" validate:"omitempty,url"`
	RepoToken   string        `json:"repoToken" yaml:"repo_token"`
	TokenFile   string        `json:"tokenFile"`
	JobID       string        `json:"jobId" yaml:"service_job_id"`
	ServiceName string        `json:"serviceName" yaml:"service_name"`
	PullRequest string        `json:"pullRequest"`
	Parallel    bool          `json:"parallel"`
	GitRepo     string        `json:"gitRepo"`
	Excludes    []string      `json:"excludes"`
	Workers     int           `json:"workers" validate:"gte=0"`
	MaxRetries  int           `json:"maxRetries" validate:"gte=0"`
	HTTPTimeout time.Duration `json:"httpTimeout" validate:"gte=0"`
	FailOnError bool          `json:"failOnError"`
	LogFile     string
	LogConfig   lumber.LoggingConfig
	Verbose     bool
}
