// Package cobertura reads cobertura XML coverage reports.
package cobertura

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/htmlindex"
)

type reportParser struct {
	logger lumber.Logger
}

// New returns a new cobertura ReportParser
func New(logger lumber.Logger) core.ReportParser {
	return &reportParser{logger: logger}
}

// Parse reads the report at path. Lines reported for the same file by several
// classes are merged by summing their hits.
func (r *reportParser) Parse(path string) (*core.CoverageReport, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errs.ReportMissingError{Path: path}
		}
		return nil, err
	}
	defer file.Close()

	return r.parse(path, file)
}

func (r *reportParser) parse(path string, reader io.Reader) (*core.CoverageReport, error) {
	decoder := xml.NewDecoder(reader)
	decoder.CharsetReader = charsetReader

	doc := coverage{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, &errs.MalformedReportError{Path: path, Reason: "invalid xml", Cause: err}
	}
	if doc.Packages == nil {
		return nil, &errs.MalformedReportError{Path: path, Reason: "missing packages element"}
	}

	report := &core.CoverageReport{}
	index := make(map[string]int)
	for _, p := range doc.Packages.Package {
		if p.Classes == nil {
			continue
		}
		for _, c := range p.Classes.Class {
			if c.Filename == nil || strings.TrimSpace(*c.Filename) == "" {
				return nil, &errs.MalformedReportError{Path: path, Reason: fmt.Sprintf("class %q has no filename", c.Name)}
			}
			filename := strings.TrimSpace(*c.Filename)
			pos, ok := index[filename]
			if !ok {
				pos = len(report.Files)
				index[filename] = pos
				report.Files = append(report.Files, core.FileEntry{ReportedPath: filename, LineHits: make(map[int]int)})
			}
			if c.Lines == nil {
				continue
			}
			for _, l := range c.Lines.Line {
				number, hits, err := parseLine(l)
				if err != nil {
					return nil, &errs.MalformedReportError{Path: path, Reason: fmt.Sprintf("class %q", c.Name), Cause: err}
				}
				report.Files[pos].LineHits[number] += hits
			}
		}
	}
	r.logger.Debugf("parsed %d files from %s", len(report.Files), path)
	return report, nil
}

func parseLine(l line) (number, hits int, err error) {
	if l.Number == nil || l.Hits == nil {
		return 0, 0, errors.New("line element requires number and hits attributes")
	}
	number, err = strconv.Atoi(strings.TrimSpace(*l.Number))
	if err != nil || number < 1 {
		return 0, 0, errors.Newf("invalid line number %q", *l.Number)
	}
	hits, err = strconv.Atoi(strings.TrimSpace(*l.Hits))
	if err != nil || hits < 0 {
		return 0, 0, errors.Newf("invalid hit count %q on line %d", *l.Hits, number)
	}
	return number, hits, nil
}

// charsetReader lets reports declare a non UTF-8 encoding in their prolog.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported report encoding %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
