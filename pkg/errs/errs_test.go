package errs

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichUploadError(t *testing.T) {
	err := EnrichUploadError("Couldn't find a repository matching this job.")
	assert.True(t, errors.Is(err, ErrUploadFailed))
	assert.Equal(t, "Couldn't find a repository matching this job.: coverage upload failed", err.Error())
	assert.Contains(t, Hints(err), "The repo token is likely incorrect")

	plain := EnrichUploadError("service unavailable")
	assert.True(t, errors.Is(plain, ErrUploadFailed))
	assert.Empty(t, Hints(plain))
}

func TestTypedErrors(t *testing.T) {
	malformed := &MalformedReportError{Path: "cobertura.xml", Reason: "missing packages", Cause: io.ErrUnexpectedEOF}
	assert.True(t, errors.Is(malformed, io.ErrUnexpectedEOF))
	assert.Equal(t, "malformed coverage report cobertura.xml: missing packages: unexpected EOF", malformed.Error())

	var target *MalformedReportError
	var wrapped error = &EncodingError{Path: "Foo.scala", Encoding: "UTF-8", Cause: malformed}
	assert.True(t, errors.As(wrapped, &target))

	unresolved := &SourceUnresolvedWarning{ReportedPath: "a/Foo.scala", Roots: []string{"core/src", "api/src"}}
	assert.Equal(t, "source file a/Foo.scala not found under any of [core/src, api/src]", unresolved.Error())

	network := &NetworkError{Message: "timeout", Cause: io.EOF}
	assert.True(t, errors.Is(network, io.EOF))
	assert.Equal(t, "illegal call to End in state created", (&IllegalStateError{Op: "End", State: "created"}).Error())
}
