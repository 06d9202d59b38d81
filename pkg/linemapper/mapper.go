// Package linemapper builds per line coverage vectors from source files.
package linemapper

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/LambdaTest/coveralls-reporter/pkg/utils"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

type lineMapper struct {
	logger       lumber.Logger
	encodingName string
	encoding     encoding.Encoding
	isUTF8       bool
}

// New returns a LineMapper reading sources with the named charset, e.g. "UTF-8",
// "ISO-8859-1" or "Shift_JIS".
func New(logger lumber.Logger, encodingName string) (core.LineMapper, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	canonical, _ := htmlindex.Name(enc)
	return &lineMapper{
		logger:       logger,
		encodingName: encodingName,
		encoding:     enc,
		isUTF8:       enc == unicode.UTF8 || canonical == "utf-8",
	}, nil
}

// LookupEncoding returns the encoding registered under name.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, errs.ErrUnknownEncoding
	}
	return enc, nil
}

// Map reads resolvedPath and builds its coverage record. Position i of the
// coverage vector holds the hits of line i+1, or nil when the line is not a
// coverable statement.
func (m *lineMapper) Map(resolvedPath, name string, lineHits map[int]int) (*core.SourceCoverageRecord, error) {
	raw, err := os.ReadFile(resolvedPath)
	if err != nil {
		return nil, err
	}
	text, err := m.decode(raw)
	if err != nil {
		return nil, &errs.EncodingError{Path: resolvedPath, Encoding: m.encodingName, Cause: err}
	}

	total := utils.CountLines(text)
	coverage := make([]*int, total)
	for number, hits := range lineHits {
		if number < 1 || number > total {
			m.logger.Debugf("line %d of %s is outside of the file (%d lines)", number, resolvedPath, total)
			continue
		}
		h := hits
		coverage[number-1] = &h
	}

	return &core.SourceCoverageRecord{
		Name:     name,
		Digest:   utils.ComputeChecksum([]byte(text)),
		Coverage: coverage,
	}, nil
}

// decode converts raw source bytes to UTF-8 text. Decoders substitute U+FFFD for
// malformed input, so any replacement character must survive a round trip back
// to the source encoding.
func (m *lineMapper) decode(raw []byte) (string, error) {
	if m.isUTF8 {
		if !utf8.Valid(raw) {
			return "", errors.New("invalid UTF-8 byte sequence")
		}
		return strings.TrimPrefix(string(raw), "\ufeff"), nil
	}
	decoded, err := m.encoding.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	if !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded), nil
	}
	encoded, err := m.encoding.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(encoded, raw) {
		return "", errors.Newf("malformed %s input", m.encodingName)
	}
	return string(decoded), nil
}
