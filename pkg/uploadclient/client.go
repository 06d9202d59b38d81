// Package uploadclient posts the payload file to the coverage aggregation service.
package uploadclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/global"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
)

const maxSnippetLength = 256

type uploadClient struct {
	logger     lumber.Logger
	httpClient core.HTTPClient
	endpoint   string
	maxRetries int
	newBackOff func() backoff.BackOff
}

// acknowledgment mirrors the response body. Pointers tell a missing key from a zero value.
type acknowledgment struct {
	Error   *bool   `json:"error"`
	Message *string `json:"message"`
	URL     string  `json:"url"`
}

// New returns an UploadClient posting to endpoint. Transport failures are retried
// up to maxRetries times with exponential backoff.
func New(logger lumber.Logger, httpClient core.HTTPClient, endpoint string, maxRetries int) core.UploadClient {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &uploadClient{
		logger:     logger,
		httpClient: httpClient,
		endpoint:   endpoint,
		maxRetries: maxRetries,
		newBackOff: func() backoff.BackOff {
			return backoff.NewExponentialBackOff()
		},
	}
}

func (u *uploadClient) PostFile(ctx context.Context, payloadPath string) *core.UploadResult {
	endpoint := strings.TrimSuffix(u.endpoint, "/") + global.JobsAPIPath

	var result *core.UploadResult
	operation := func() error {
		var err error
		result, err = u.post(ctx, endpoint, payloadPath)
		return err
	}
	notify := func(err error, wait time.Duration) {
		u.logger.Warnf("upload to %s failed, retrying in %s: %v", endpoint, wait, err)
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(u.newBackOff(), uint64(u.maxRetries)), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		u.logger.Errorf("error while uploading %s to %s: %v", payloadPath, endpoint, err)
		return networkFailure(fmt.Sprintf("unable to upload %s to %s: %v", payloadPath, endpoint, err), err)
	}
	return result
}

// post performs a single attempt. A returned error is a transport failure; errors
// that cannot be fixed by retrying are marked permanent.
func (u *uploadClient) post(ctx context.Context, endpoint, payloadPath string) (*core.UploadResult, error) {
	file, err := os.Open(payloadPath)
	if err != nil {
		return nil, backoff.Permanent(err)
	}

	body, pipe := io.Pipe()
	defer body.Close()
	form := multipart.NewWriter(pipe)
	go func() {
		defer file.Close()
		part, err := form.CreateFormFile(global.PayloadFormField, filepath.Base(payloadPath))
		if err == nil {
			_, err = io.Copy(part, file)
		}
		if err == nil {
			err = form.Close()
		}
		pipe.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return u.classify(endpoint, resp.StatusCode, respBody), nil
}

func (u *uploadClient) classify(endpoint string, status int, body []byte) *core.UploadResult {
	if len(bytes.TrimSpace(body)) == 0 {
		return networkFailure(fmt.Sprintf("empty response from %s (HTTP %d)", endpoint, status), nil)
	}
	var ack acknowledgment
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &ack); err != nil {
		return networkFailure(fmt.Sprintf("malformed response from %s (HTTP %d): %s", endpoint, status, snippet(body)), err)
	}
	if ack.Error == nil && ack.Message == nil {
		return networkFailure(fmt.Sprintf("unexpected response from %s (HTTP %d): %s", endpoint, status, snippet(body)), nil)
	}

	result := &core.UploadResult{URL: ack.URL}
	if ack.Message != nil {
		result.Message = *ack.Message
	}
	result.Error = ack.Error != nil && *ack.Error
	if !result.Error && status >= http.StatusBadRequest {
		result.Error = true
		if result.Message == "" {
			result.Message = fmt.Sprintf("upload rejected with HTTP %d", status)
		}
	}
	if result.Error {
		result.Err = &errs.APIError{Message: result.Message, URL: endpoint}
		return result
	}
	u.logger.Debugf("upload accepted by %s: %s", endpoint, result.Message)
	return result
}

func networkFailure(message string, cause error) *core.UploadResult {
	return &core.UploadResult{
		Error:   true,
		Message: message,
		Err:     &errs.NetworkError{Message: message, Cause: cause},
	}
}

func snippet(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxSnippetLength {
		return text[:maxSnippetLength] + "..."
	}
	return text
}
