package main

import (
	"bytes"
	"testing"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	var out bytes.Buffer
	renderSummary(&out, &core.RunSummary{
		PayloadPath:  "/tmp/coveralls.json",
		FilesWritten: 12,
		FilesSkipped: 3,
		Result:       &core.UploadResult{Message: "Job #7.1", URL: "https://coveralls.io/jobs/7"},
	})

	text := out.String()
	assert.Contains(t, text, "/tmp/coveralls.json")
	assert.Contains(t, text, "12")
	assert.Contains(t, text, "uploaded")
	assert.Contains(t, text, "https://coveralls.io/jobs/7")

	out.Reset()
	renderSummary(&out, &core.RunSummary{
		PayloadPath: "/tmp/coveralls.json",
		Result:      &core.UploadResult{Error: true, Message: "Couldn't find a repository matching this job."},
	})
	assert.Contains(t, out.String(), "failed")
	assert.NotContains(t, out.String(), "URL")
}
