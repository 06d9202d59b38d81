// Package errs defines the error taxonomy of the coverage reporter.
package errs

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Err represents structure of a custom error
type Err struct {
	Code    string
	Message string
	URL     string
}

func (e Err) Error() string {
	return fmt.Sprintf("%s : %s ", e.Code, e.Message)
}

// Error represents a json-encoded API error.
type Error struct {
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a new error message.
func New(text string) error {
	return &Error{Message: text}
}

// ConfigurationError is returned when neither a repo token nor a CI job id could be resolved.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "invalid configuration: " + e.Reason
}

// ReportMissingError is returned when the coverage report does not exist.
type ReportMissingError struct {
	Path string
}

func (e *ReportMissingError) Error() string {
	return fmt.Sprintf("coverage report not found at %s", e.Path)
}

// MalformedReportError is returned when the report is not well formed or does not
// follow the packages/classes/lines layout.
type MalformedReportError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *MalformedReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed coverage report %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("malformed coverage report %s: %s", e.Path, e.Reason)
}

func (e *MalformedReportError) Unwrap() error {
	return e.Cause
}

// SourceUnresolvedWarning marks a reported file that matched no source root.
type SourceUnresolvedWarning struct {
	ReportedPath string
	Roots        []string
}

func (e *SourceUnresolvedWarning) Error() string {
	return fmt.Sprintf("source file %s not found under any of [%s]", e.ReportedPath, strings.Join(e.Roots, ", "))
}

// EncodingError is returned when a source file cannot be decoded with the configured charset.
type EncodingError struct {
	Path     string
	Encoding string
	Cause    error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("unable to decode %s as %s: %v", e.Path, e.Encoding, e.Cause)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}

// NetworkError wraps a transport or protocol level upload failure.
type NetworkError struct {
	Message string
	Cause   error
}

func (e *NetworkError) Error() string {
	return e.Message
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// APIError is an error reported by the aggregation service itself.
type APIError struct {
	Message string
	URL     string
}

func (e *APIError) Error() string {
	return e.Message
}

// IllegalStateError is returned by the payload writer on out of order calls.
type IllegalStateError struct {
	Op    string
	State string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal call to %s in state %s", e.Op, e.State)
}

var (
	// ErrMissingToken is the reason used when no token and no job id are present.
	ErrMissingToken = New("no repo token or service job id configured")
	// ErrEmptyTokenFile is returned when the configured token file is empty.
	ErrEmptyTokenFile = New("token file is empty")
	// ErrInvalidLoggerInstance is returned when logger instance is not supported.
	ErrInvalidLoggerInstance = New("Invalid logger instance")
	// ErrUnknownEncoding is returned when the source encoding name is not recognised.
	ErrUnknownEncoding = New("unknown source encoding")
	// ErrUploadFailed is returned by the fail-build policy for an error upload result.
	ErrUploadFailed = New("coverage upload failed")
	// ErrInvalidGitMetadata is returned when the envelope's git block is not valid json.
	ErrInvalidGitMetadata = New("git metadata is not valid json")
)

// TokenRejectedMessage is the message the aggregation service returns when it
// cannot match a repo token or job id to a repository.
const TokenRejectedMessage = "Couldn't find a repository matching this job"

// EnrichUploadError wraps an upload failure message, attaching a hint when the
// service rejected the token.
func EnrichUploadError(message string) error {
	err := errors.Wrap(ErrUploadFailed, message)
	if strings.Contains(message, TokenRejectedMessage) {
		err = errors.WithHint(err, "The repo token is likely incorrect, or the CI job id does not belong to this repository.")
	}
	return err
}

// Hints returns the flattened user facing hints attached to err.
func Hints(err error) string {
	return errors.FlattenHints(err)
}

// ERR_VLD_CFG function return error with code ERR::CNF::FLD::VLD
func ERR_VLD_CFG(errs []string) Err {
	return Err{
		Code:    "ERR::CNF::FLD::VLD",
		Message: fmt.Sprintf("Validation errors :  \n%s", strings.Join(errs, "\n"))}
}

// ERR_FIL_CRT function returns error with code ERR::FIL::CRT
func ERR_FIL_CRT(err string) Err {
	return Err{
		Code:    "ERR::FIL::CRT",
		Message: fmt.Sprintf("Unable to create file :  \n%s", err)}
}
