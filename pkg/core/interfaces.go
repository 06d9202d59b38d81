package core

import (
	"context"
	"net/http"
)

// ReportParser reads a cobertura coverage report
type ReportParser interface {
	// Parse parses the report at the given path.
	Parse(path string) (*CoverageReport, error)
}

// SourceResolver finds reported files under the configured source roots
type SourceResolver interface {
	// Resolve returns the path of the first root containing reportedPath.
	Resolve(reportedPath string, roots []string) (string, bool)
	// Excluded reports whether reportedPath matches an exclusion pattern.
	Excluded(reportedPath string) bool
}

// LineMapper builds the per line coverage vector of a source file
type LineMapper interface {
	Map(resolvedPath, name string, lineHits map[int]int) (*SourceCoverageRecord, error)
}

// PayloadWriter streams the upload payload to disk
type PayloadWriter interface {
	// Start opens the sink and writes the envelope fields.
	Start() error
	// AddSourceFile appends a record to the source_files array.
	AddSourceFile(record *SourceCoverageRecord) error
	// End closes the document and the sink.
	End() error
	// Abort closes the sink without completing the document. It is a no-op once ended.
	Abort() error
	State() PayloadState
	Path() string
}

// PayloadWriterFactory creates a writer for the payload at path.
type PayloadWriterFactory func(path string, envelope PayloadEnvelope) PayloadWriter

// UploadClient posts the payload to the aggregation service
type UploadClient interface {
	// PostFile uploads the payload file. Failures are reported in the result, never returned.
	PostFile(ctx context.Context, payloadPath string) *UploadResult
}

// HTTPClient is the transport used by the upload client
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// EnvProvider isolates environment and token file lookups
type EnvProvider interface {
	Get(key string) (string, bool)
	ReadFile(path string) ([]byte, error)
}

// GitInfoCollector reads version control metadata of a repository
type GitInfoCollector interface {
	Collect(repoPath string) (*GitInfo, error)
}

// FailPolicy decides what an upload result means for the caller. A non nil error
// signals the caller to fail.
type FailPolicy func(result *UploadResult) error
