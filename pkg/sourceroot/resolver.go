// Package sourceroot resolves reported file paths against the configured source roots.
package sourceroot

import (
	"path/filepath"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/fileutils"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/bmatcuk/doublestar/v4"
)

type sourceResolver struct {
	logger   lumber.Logger
	excludes []string
}

// New returns a SourceResolver. Invalid exclusion patterns are dropped with a warning.
func New(logger lumber.Logger, excludes []string) core.SourceResolver {
	valid := make([]string, 0, len(excludes))
	for _, pattern := range excludes {
		if !doublestar.ValidatePattern(pattern) {
			logger.Warnf("ignoring invalid exclude pattern %q", pattern)
			continue
		}
		valid = append(valid, pattern)
	}
	return &sourceResolver{logger: logger, excludes: valid}
}

// Resolve returns the first root, in the given order, under which reportedPath is
// a regular file.
func (s *sourceResolver) Resolve(reportedPath string, roots []string) (string, bool) {
	relative := normalize(reportedPath)
	if relative == "" {
		return "", false
	}
	if filepath.IsAbs(relative) {
		if fileutils.IsRegularFile(relative) {
			return relative, true
		}
		return "", false
	}
	for _, root := range roots {
		candidate := filepath.Join(root, relative)
		if fileutils.IsRegularFile(candidate) {
			s.logger.Debugf("resolved %s to %s", reportedPath, candidate)
			return candidate, true
		}
	}
	return "", false
}

// Excluded reports whether reportedPath matches one of the exclusion patterns.
func (s *sourceResolver) Excluded(reportedPath string) bool {
	slashed := strings.ReplaceAll(reportedPath, "\\", "/")
	for _, pattern := range s.excludes {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
	}
	return false
}

// normalize converts the report's separator convention to the host's.
func normalize(reportedPath string) string {
	p := strings.TrimSpace(reportedPath)
	p = strings.ReplaceAll(p, "\\", "/")
	if p == "" {
		return ""
	}
	return filepath.Clean(filepath.FromSlash(p))
}
