package policy

import (
	"errors"
	"testing"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailBuild(t *testing.T) {
	tests := []struct {
		name     string
		result   *core.UploadResult
		wantErr  bool
		wantHint bool
	}{
		{"nil result", nil, false, false},
		{"success", &core.UploadResult{Message: "Job #1.1", URL: "https://coveralls.io/jobs/1"}, false, false},
		{"api error", &core.UploadResult{Error: true, Message: "Build processing error."}, true, false},
		{"token rejected", &core.UploadResult{Error: true, Message: "Couldn't find a repository matching this job."}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FailBuild(tt.result)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrUploadFailed))
			assert.Contains(t, err.Error(), tt.result.Message)
			if tt.wantHint {
				assert.Contains(t, errs.Hints(err), "repo token is likely incorrect")
			} else {
				assert.Empty(t, errs.Hints(err))
			}
		})
	}
}

func TestLogAndContinue(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	policy := LogAndContinue(logger)
	assert.NoError(t, policy(&core.UploadResult{Error: true, Message: "Couldn't find a repository matching this job."}))
	assert.NoError(t, policy(&core.UploadResult{Message: "ok"}))
}

func TestSelect(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	failed := &core.UploadResult{Error: true, Message: "boom"}

	assert.Error(t, Select(true, logger)(failed))
	assert.NoError(t, Select(false, logger)(failed))
}
