package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/LambdaTest/coveralls-reporter/config"
	"github.com/LambdaTest/coveralls-reporter/pkg/cobertura"
	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/envprovider"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/gitinfo"
	"github.com/LambdaTest/coveralls-reporter/pkg/global"
	"github.com/LambdaTest/coveralls-reporter/pkg/linemapper"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/LambdaTest/coveralls-reporter/pkg/payloadwriter"
	"github.com/LambdaTest/coveralls-reporter/pkg/policy"
	"github.com/LambdaTest/coveralls-reporter/pkg/sourceroot"
	"github.com/LambdaTest/coveralls-reporter/pkg/uploadclient"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RootCommand will setup and return the root command
func RootCommand() *cobra.Command {
	rootCmd := cobra.Command{
		Use:          "coveralls",
		Long:         `coveralls translates a cobertura coverage report into a coveralls payload and uploads it`,
		Version:      global.ReporterVersion,
		RunE:         run,
		SilenceUsage: true,
	}

	// define flags used for this command
	if err := AttachCLIFlags(&rootCmd); err != nil {
		fmt.Println("Error in attaching cli flags")
	}

	return &rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load environment variables from .env if available
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Warning: unable to read .env file: %v\n", err)
	}

	cfg, err := config.LoadReporterConfig(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	// patch logconfig file location with root level log file location
	if cfg.LogFile != "" {
		cfg.LogConfig.EnableFile = true
		cfg.LogConfig.FileLocation = filepath.Join(cfg.LogFile, "coveralls.log")
	}

	// You can also use logrus implementation
	// by using lumber.InstanceLogrusLogger
	logger, err := lumber.NewLogger(cfg.LogConfig, cfg.Verbose, lumber.InstanceZapLogger)
	if err != nil {
		return errors.Wrap(err, "could not instantiate logger")
	}
	if err := config.ValidateCfg(cfg, logger); err != nil {
		logger.Errorf("invalid configuration: %v", err)
		return err
	}

	settings, err := config.Resolve(cfg, envprovider.New())
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}
	pl, err := newPipeline(settings, logger)
	if err != nil {
		logger.Errorf("Unable to create the pipeline: %v", err)
		return err
	}

	logger.Infof("coveralls reporter version: %s", global.ReporterVersion)
	summary, err := pl.Run(ctx)
	if err != nil {
		var missing *errs.ReportMissingError
		if errors.As(err, &missing) && !cfg.FailOnError {
			logger.Warnf("%v, nothing to upload", missing)
			return nil
		}
		return err
	}

	renderSummary(cmd.OutOrStdout(), summary)
	if err := policy.Select(cfg.FailOnError, logger)(summary.Result); err != nil {
		if hint := errs.Hints(err); hint != "" {
			logger.Errorf("%s", hint)
		}
		return err
	}
	return nil
}

// newPipeline attaches the production collaborators to the pipeline
func newPipeline(settings core.Settings, logger lumber.Logger) (*core.Pipeline, error) {
	pl, err := core.NewPipeline(settings, logger)
	if err != nil {
		return nil, err
	}
	mapper, err := linemapper.New(logger, settings.Encoding)
	if err != nil {
		return nil, err
	}

	pl.ReportParser = cobertura.New(logger)
	pl.SourceResolver = sourceroot.New(logger, settings.Excludes)
	pl.LineMapper = mapper
	pl.GitInfoCollector = gitinfo.New(logger)
	pl.NewPayloadWriter = payloadwriter.Factory(logger)
	pl.UploadClient = uploadclient.New(logger, &http.Client{Timeout: settings.HTTPTimeout}, settings.Endpoint, settings.MaxRetries)
	return pl, nil
}
