// Package payloadwriter streams the upload payload to disk one source file at a time.
package payloadwriter

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/fileutils"
	"github.com/LambdaTest/coveralls-reporter/pkg/global"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
)

type payloadWriter struct {
	logger   lumber.Logger
	path     string
	envelope core.PayloadEnvelope
	state    core.PayloadState
	file     *os.File
	buffered *bufio.Writer
	stream   *jsoniter.Stream
	records  int
}

// New returns a PayloadWriter for path. Nothing is written until Start.
func New(path string, envelope core.PayloadEnvelope, logger lumber.Logger) core.PayloadWriter {
	return &payloadWriter{
		logger:   logger,
		path:     path,
		envelope: envelope,
		state:    core.PayloadCreated,
	}
}

// Factory adapts New to core.PayloadWriterFactory.
func Factory(logger lumber.Logger) core.PayloadWriterFactory {
	return func(path string, envelope core.PayloadEnvelope) core.PayloadWriter {
		return New(path, envelope, logger)
	}
}

func (w *payloadWriter) State() core.PayloadState {
	return w.state
}

func (w *payloadWriter) Path() string {
	return w.path
}

// Start creates (or truncates) the payload file, writes the envelope fields and
// opens the source_files array.
func (w *payloadWriter) Start() error {
	if w.state != core.PayloadCreated {
		return &errs.IllegalStateError{Op: "Start", State: w.state.String()}
	}
	if len(w.envelope.Git) > 0 && !jsoniter.Valid(w.envelope.Git) {
		return errs.ErrInvalidGitMetadata
	}
	if err := fileutils.CreateIfNotExists(filepath.Dir(w.path), true); err != nil {
		return errs.ERR_FIL_CRT(err.Error())
	}
	file, err := os.Create(w.path)
	if err != nil {
		return errs.ERR_FIL_CRT(err.Error())
	}
	w.file = file
	w.buffered = bufio.NewWriterSize(file, global.PayloadWriteBufferSize)
	w.stream = jsoniter.NewStream(jsoniter.ConfigCompatibleWithStandardLibrary, w.buffered, 4096)
	w.state = core.PayloadStarted

	w.stream.WriteObjectStart()
	first := true
	field := func(name string) {
		if !first {
			w.stream.WriteMore()
		}
		first = false
		w.stream.WriteObjectField(name)
	}
	if w.envelope.RepoToken != "" {
		field("repo_token")
		w.stream.WriteString(w.envelope.RepoToken)
	}
	if w.envelope.ServiceJobID != "" {
		field("service_job_id")
		w.stream.WriteString(w.envelope.ServiceJobID)
	}
	if w.envelope.ServiceName != "" {
		field("service_name")
		w.stream.WriteString(w.envelope.ServiceName)
	}
	if w.envelope.ServicePullRequest != "" {
		field("service_pull_request")
		w.stream.WriteString(w.envelope.ServicePullRequest)
	}
	if w.envelope.Parallel {
		field("parallel")
		w.stream.WriteBool(true)
	}
	if len(w.envelope.Git) > 0 {
		field("git")
		w.stream.WriteRaw(string(w.envelope.Git))
	}
	field("source_files")
	w.stream.WriteArrayStart()

	return w.flush()
}

// AddSourceFile serializes record into the open array. The record is not retained.
func (w *payloadWriter) AddSourceFile(record *core.SourceCoverageRecord) error {
	if w.state != core.PayloadStarted {
		return &errs.IllegalStateError{Op: "AddSourceFile", State: w.state.String()}
	}
	if w.records > 0 {
		w.stream.WriteMore()
	}
	w.stream.WriteObjectStart()
	w.stream.WriteObjectField("name")
	w.stream.WriteString(record.Name)
	w.stream.WriteMore()
	w.stream.WriteObjectField("source_digest")
	w.stream.WriteString(record.Digest)
	w.stream.WriteMore()
	w.stream.WriteObjectField("coverage")
	w.stream.WriteArrayStart()
	for i, hits := range record.Coverage {
		if i > 0 {
			w.stream.WriteMore()
		}
		if hits == nil {
			w.stream.WriteNil()
			continue
		}
		w.stream.WriteInt(*hits)
	}
	w.stream.WriteArrayEnd()
	w.stream.WriteObjectEnd()
	w.records++

	return w.flush()
}

// End closes the array and the envelope, then flushes and closes the file. The file
// is closed even when the final write fails.
func (w *payloadWriter) End() (err error) {
	if w.state != core.PayloadStarted {
		return &errs.IllegalStateError{Op: "End", State: w.state.String()}
	}
	w.state = core.PayloadEnded
	defer func() {
		if cerr := w.file.Close(); cerr != nil && err == nil {
			err = cerr
		}
		w.release()
	}()

	w.stream.WriteArrayEnd()
	w.stream.WriteObjectEnd()
	if err = w.flush(); err != nil {
		return err
	}
	if err = w.buffered.Flush(); err != nil {
		return err
	}
	w.logger.Debugf("payload %s closed with %d source files", w.path, w.records)
	return nil
}

// Abort closes the sink and removes the partially written file. It is safe to call
// in any state and does nothing once the payload has ended.
func (w *payloadWriter) Abort() error {
	switch w.state {
	case core.PayloadEnded:
		return nil
	case core.PayloadCreated:
		w.state = core.PayloadEnded
		return nil
	}
	w.state = core.PayloadEnded
	defer w.release()

	closeErr := w.file.Close()
	if err := os.Remove(w.path); err != nil && !os.IsNotExist(err) {
		w.logger.Warnf("failed to remove partial payload %s: %v", w.path, err)
	}
	w.logger.Debugf("payload %s aborted after %d source files", w.path, w.records)
	return closeErr
}

// flush hands the stream buffer to the file writer so that at most one record is
// held in memory.
func (w *payloadWriter) flush() error {
	if err := w.stream.Flush(); err != nil {
		return err
	}
	return w.stream.Error
}

func (w *payloadWriter) release() {
	w.stream = nil
	w.buffered = nil
	w.file = nil
}
