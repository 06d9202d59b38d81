// Package policy holds the caller side decisions about a failed upload.
package policy

import (
	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
)

// FailBuild turns an error result into an error carrying a hint when the service
// rejected the token.
func FailBuild(result *core.UploadResult) error {
	if result == nil || !result.Error {
		return nil
	}
	return errs.EnrichUploadError(result.Message)
}

// LogAndContinue logs an error result and never fails.
func LogAndContinue(logger lumber.Logger) core.FailPolicy {
	return func(result *core.UploadResult) error {
		if err := FailBuild(result); err != nil {
			if hint := errs.Hints(err); hint != "" {
				logger.Warnf("ignoring %v (%s)", err, hint)
			} else {
				logger.Warnf("ignoring %v", err)
			}
		}
		return nil
	}
}

// Select returns FailBuild when failOnError is set and LogAndContinue otherwise.
func Select(failOnError bool, logger lumber.Logger) core.FailPolicy {
	if failOnError {
		return FailBuild
	}
	return LogAndContinue(logger)
}
