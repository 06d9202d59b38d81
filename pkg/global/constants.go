package global

import "time"

// All constant related to the reporter
const (
	DefaultEndpoint        = "https://coveralls.io"
	JobsAPIPath            = "/api/v1/jobs"
	PayloadFormField       = "json_file"
	DefaultEncoding        = "UTF-8"
	DefaultHTTPTimeout     = 45 * time.Second
	DirectoryPermissions   = 0755
	FilePermissions        = 0644
	PayloadWriteBufferSize = 32 * 1024
)

// Environment variables consumed while resolving settings.
const (
	RepoTokenEnv = "COVERALLS_REPO_TOKEN"
	EndpointEnv  = "COVERALLS_ENDPOINT"
	JobIDEnv     = "COVERALLS_SERVICE_JOB_ID"
	ParallelEnv  = "COVERALLS_PARALLEL"
)

// JobIDEnvVars maps a configured service name to the environment variable that
// carries its job identifier.
var JobIDEnvVars = map[string]string{
	"travis-ci":       "TRAVIS_JOB_ID",
	"travis-pro":      "TRAVIS_JOB_ID",
	"github":          "GITHUB_RUN_ID",
	"circleci":        "CIRCLE_BUILD_NUM",
	"gitlab-ci":       "CI_JOB_ID",
	"jenkins":         "BUILD_NUMBER",
	"buildkite":       "BUILDKITE_BUILD_NUMBER",
	"semaphore-ci":    "SEMAPHORE_JOB_ID",
	"azure-pipelines": "BUILD_BUILDID",
}

// PullRequestEnvVars maps a configured service name to the environment variable that
// carries the pull request number, where the service exposes one.
var PullRequestEnvVars = map[string]string{
	"travis-ci":  "TRAVIS_PULL_REQUEST",
	"travis-pro": "TRAVIS_PULL_REQUEST",
	"circleci":   "CIRCLE_PR_NUMBER",
	"gitlab-ci":  "CI_MERGE_REQUEST_IID",
}

// ReporterVersion is overridden at build time through -ldflags.
var ReporterVersion = "dev"
