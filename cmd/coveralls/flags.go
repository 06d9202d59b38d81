package main

import (
	"github.com/spf13/cobra"
)

// AttachCLIFlags attaches command line flags to command
func AttachCLIFlags(rootCmd *cobra.Command) error {
	rootCmd.PersistentFlags().StringP("config", "c", "", "the config file to use")
	rootCmd.PersistentFlags().StringP("reportPath", "r", "", "Path of the cobertura xml report")
	rootCmd.PersistentFlags().StringSliceP("sourceRoots", "s", nil, "Ordered source roots the report paths are resolved against")
	rootCmd.PersistentFlags().String("repoRoot", "", "Repository root, source file names are made relative to it")
	rootCmd.PersistentFlags().String("encoding", "", "Character encoding of the source files")
	rootCmd.PersistentFlags().StringP("payloadPath", "o", "", "Where to write the upload payload")
	rootCmd.PersistentFlags().String("endpoint", "", "Coveralls endpoint")
	rootCmd.PersistentFlags().String("repoToken", "", "Coveralls repo token")
	rootCmd.PersistentFlags().String("tokenFile", "", "File holding the coveralls repo token")
	rootCmd.PersistentFlags().String("jobId", "", "The CI job id")
	rootCmd.PersistentFlags().String("serviceName", "", "The CI service name, e.g. travis-ci or github")
	rootCmd.PersistentFlags().String("pullRequest", "", "The pull request number")
	rootCmd.PersistentFlags().Bool("parallel", false, "Mark the job as part of a parallel build")
	rootCmd.PersistentFlags().String("gitRepo", "", "Repository to read git metadata from")
	rootCmd.PersistentFlags().StringSlice("excludes", nil, "Glob patterns of reported paths to skip")
	rootCmd.PersistentFlags().Int("workers", 0, "Number of files mapped concurrently")
	rootCmd.PersistentFlags().Int("maxRetries", 0, "Upload retries on transport failures")
	rootCmd.PersistentFlags().Duration("httpTimeout", 0, "Timeout of the upload request")
	rootCmd.PersistentFlags().Bool("failOnError", false, "Exit with an error when the upload fails")
	rootCmd.PersistentFlags().String("logFile", "", "Directory to write coveralls.log into")
	rootCmd.PersistentFlags().BoolP("verbose", "", false, "Run in verbose mode")

	return nil
}
