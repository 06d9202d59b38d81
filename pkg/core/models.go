package core

import (
	"encoding/json"
	"time"
)

// FileEntry is the line coverage reported for a single file.
type FileEntry struct {
	ReportedPath string
	// LineHits maps a 1-based line number to its hit count. Lines absent from the
	// map are not coverable statements.
	LineHits map[int]int
}

// CoverageReport is the parsed content of a cobertura report, in document order.
type CoverageReport struct {
	Files []FileEntry
}

// SourceCoverageRecord is a single entry of the payload's source_files array.
type SourceCoverageRecord struct {
	Name     string `json:"name"`
	Digest   string `json:"source_digest"`
	Coverage []*int `json:"coverage"`
}

// GitHead describes the commit the coverage was produced for.
type GitHead struct {
	ID             string `json:"id"`
	AuthorName     string `json:"author_name"`
	AuthorEmail    string `json:"author_email"`
	CommitterName  string `json:"committer_name"`
	CommitterEmail string `json:"committer_email"`
	Message        string `json:"message"`
}

// GitRemote is a configured remote of the repository.
type GitRemote struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GitInfo is the version control metadata merged into the payload envelope.
type GitInfo struct {
	Head    GitHead     `json:"head"`
	Branch  string      `json:"branch"`
	Remotes []GitRemote `json:"remotes"`
}

// PayloadEnvelope holds the fixed fields of the upload payload. Git is kept as an
// opaque, already encoded JSON value.
type PayloadEnvelope struct {
	RepoToken          string
	ServiceJobID       string
	ServiceName        string
	ServicePullRequest string
	Parallel           bool
	Git                json.RawMessage
}

// PayloadState is the lifecycle state of a PayloadWriter.
type PayloadState int

// PayloadWriter states
const (
	PayloadCreated PayloadState = iota
	PayloadStarted
	PayloadEnded
)

func (s PayloadState) String() string {
	switch s {
	case PayloadCreated:
		return "created"
	case PayloadStarted:
		return "started"
	case PayloadEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// UploadResult is the acknowledgment of an upload attempt.
type UploadResult struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	URL     string `json:"url"`
	// Err is the classified failure, *errs.NetworkError or *errs.APIError, nil on success.
	Err error `json:"-"`
}

// RunSummary describes a finished pipeline run.
type RunSummary struct {
	Result       *UploadResult
	PayloadPath  string
	FilesWritten int
	FilesSkipped int
}

// Settings is the resolved, immutable configuration consumed by the pipeline.
type Settings struct {
	ReportPath         string
	SourceRoots        []string
	RepoRootDir        string
	Encoding           string
	PayloadPath        string
	Endpoint           string
	RepoToken          string
	ServiceJobID       string
	ServiceName        string
	ServicePullRequest string
	Parallel           bool
	GitRepoPath        string
	Excludes           []string
	Workers            int
	MaxRetries         int
	HTTPTimeout        time.Duration
}
