package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

// Pipeline runs the report translation and upload
type Pipeline struct {
	Settings         Settings
	Logger           lumber.Logger
	ReportParser     ReportParser
	SourceResolver   SourceResolver
	LineMapper       LineMapper
	GitInfoCollector GitInfoCollector
	UploadClient     UploadClient
	NewPayloadWriter PayloadWriterFactory
}

type mappedFile struct {
	record *SourceCoverageRecord
	ok     bool
}

// NewPipeline creates and returns a new Pipeline instance
func NewPipeline(settings Settings, logger lumber.Logger) (*Pipeline, error) {
	if settings.RepoToken == "" && settings.ServiceJobID == "" {
		return nil, &errs.ConfigurationError{Reason: errs.ErrMissingToken.Error()}
	}
	return &Pipeline{
		Settings: settings,
		Logger:   logger,
	}, nil
}

// Run parses the report, streams the payload to disk and uploads it. Upload
// failures are reported through the summary's Result; only configuration, report
// and payload write failures are returned as errors.
func (pl *Pipeline) Run(ctx context.Context) (*RunSummary, error) {
	if pl.Settings.RepoToken == "" && pl.Settings.ServiceJobID == "" {
		return nil, &errs.ConfigurationError{Reason: errs.ErrMissingToken.Error()}
	}

	pl.Logger.Debugf("Parsing coverage report %s", pl.Settings.ReportPath)
	report, err := pl.ReportParser.Parse(pl.Settings.ReportPath)
	if err != nil {
		pl.Logger.Errorf("failed to parse coverage report: %v", err)
		return nil, err
	}
	pl.Logger.Infof("Parsed %d files from %s", len(report.Files), pl.Settings.ReportPath)

	writer := pl.NewPayloadWriter(pl.Settings.PayloadPath, pl.envelope())
	summary := &RunSummary{PayloadPath: writer.Path()}

	if err := pl.writePayload(ctx, writer, report, summary); err != nil {
		if abortErr := writer.Abort(); abortErr != nil {
			pl.Logger.Errorf("failed to close payload %s: %v", writer.Path(), abortErr)
		}
		return nil, err
	}
	pl.Logger.Infof("Wrote %d source files to %s, skipped %d", summary.FilesWritten, writer.Path(), summary.FilesSkipped)

	summary.Result = pl.UploadClient.PostFile(ctx, writer.Path())
	if summary.Result.Error {
		pl.Logger.Errorf("coverage upload failed: %s", summary.Result.Message)
	} else {
		pl.Logger.Infof("Uploaded coverage: %s", summary.Result.URL)
	}
	return summary, nil
}

func (pl *Pipeline) envelope() PayloadEnvelope {
	envelope := PayloadEnvelope{
		RepoToken:          pl.Settings.RepoToken,
		ServiceJobID:       pl.Settings.ServiceJobID,
		ServiceName:        pl.Settings.ServiceName,
		ServicePullRequest: pl.Settings.ServicePullRequest,
		Parallel:           pl.Settings.Parallel,
	}
	if pl.GitInfoCollector == nil || pl.Settings.GitRepoPath == "" {
		return envelope
	}
	info, err := pl.GitInfoCollector.Collect(pl.Settings.GitRepoPath)
	if err != nil {
		pl.Logger.Warnf("git metadata not available for %s, omitting it: %v", pl.Settings.GitRepoPath, err)
		return envelope
	}
	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(info)
	if err != nil {
		pl.Logger.Warnf("failed to encode git metadata: %v", err)
		return envelope
	}
	envelope.Git = raw
	return envelope
}

func (pl *Pipeline) writePayload(ctx context.Context, writer PayloadWriter, report *CoverageReport, summary *RunSummary) error {
	if err := writer.Start(); err != nil {
		return err
	}
	write := func(m mappedFile) error {
		if !m.ok {
			summary.FilesSkipped++
			return nil
		}
		if err := writer.AddSourceFile(m.record); err != nil {
			return err
		}
		summary.FilesWritten++
		return nil
	}

	var err error
	if pl.Settings.Workers > 1 {
		err = pl.mapParallel(ctx, report.Files, write)
	} else {
		err = pl.mapSequential(ctx, report.Files, write)
	}
	if err != nil {
		return err
	}
	return writer.End()
}

func (pl *Pipeline) mapSequential(ctx context.Context, files []FileEntry, write func(mappedFile) error) error {
	for i := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := write(pl.mapFile(&files[i])); err != nil {
			return err
		}
	}
	return nil
}

// mapParallel maps files on a bounded worker pool while handing the results to
// write in report order. At most 2*Workers records are held at once.
func (pl *Pipeline) mapParallel(ctx context.Context, files []FileEntry, write func(mappedFile) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := pl.Settings.Workers
	results := make([]chan mappedFile, len(files))
	for i := range results {
		results[i] = make(chan mappedFile, 1)
	}
	window := make(chan struct{}, 2*workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers + 1)
	g.Go(func() error {
		for i := range files {
			select {
			case window <- struct{}{}:
			case <-gctx.Done():
				return nil
			}
			entry := &files[i]
			out := results[i]
			g.Go(func() error {
				out <- pl.mapFile(entry)
				return nil
			})
		}
		return nil
	})

	var writeErr error
	for i := range results {
		if writeErr = ctx.Err(); writeErr != nil {
			break
		}
		select {
		case m := <-results[i]:
			writeErr = write(m)
			<-window
		case <-gctx.Done():
			writeErr = gctx.Err()
		}
		if writeErr != nil {
			cancel()
			break
		}
	}
	if err := g.Wait(); err != nil && writeErr == nil {
		writeErr = err
	}
	return writeErr
}

// mapFile resolves and maps a single entry. File level problems are logged and
// reported as a skip.
func (pl *Pipeline) mapFile(entry *FileEntry) mappedFile {
	logger := pl.Logger.WithFields(lumber.Fields{"file": entry.ReportedPath})
	if pl.SourceResolver.Excluded(entry.ReportedPath) {
		logger.Debugf("skipping excluded file")
		return mappedFile{}
	}
	resolved, ok := pl.SourceResolver.Resolve(entry.ReportedPath, pl.Settings.SourceRoots)
	if !ok {
		warning := &errs.SourceUnresolvedWarning{ReportedPath: entry.ReportedPath, Roots: pl.Settings.SourceRoots}
		logger.Warnf("%v, skipping", warning)
		return mappedFile{}
	}
	record, err := pl.LineMapper.Map(resolved, pl.recordName(entry.ReportedPath, resolved), entry.LineHits)
	if err != nil {
		var encErr *errs.EncodingError
		if errors.As(err, &encErr) {
			logger.Warnf("%v, skipping", encErr)
		} else {
			logger.Warnf("failed to map coverage for %s, skipping: %v", resolved, err)
		}
		return mappedFile{}
	}
	return mappedFile{record: record, ok: true}
}

// recordName is the resolved path relative to the repository root, falling back to
// the reported path when the file lives outside it.
func (pl *Pipeline) recordName(reportedPath, resolvedPath string) string {
	fallback := filepath.ToSlash(reportedPath)
	if pl.Settings.RepoRootDir == "" {
		return fallback
	}
	root, err := filepath.Abs(pl.Settings.RepoRootDir)
	if err != nil {
		return fallback
	}
	abs, err := filepath.Abs(resolvedPath)
	if err != nil {
		return fallback
	}
	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fallback
	}
	return filepath.ToSlash(rel)
}
