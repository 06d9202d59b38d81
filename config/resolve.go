package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/global"
	"github.com/LambdaTest/coveralls-reporter/pkg/utils"
)

// Resolve turns the loaded config into the settings consumed by the pipeline. It
// fails with a ConfigurationError when neither a repo token nor a job id is found.
func Resolve(cfg *ReporterConfig, env core.EnvProvider) (core.Settings, error) {
	token, err := ResolveToken(cfg, env)
	if err != nil {
		return core.Settings{}, err
	}
	jobID := resolveJobID(cfg, env)
	if token == "" && jobID == "" {
		return core.Settings{}, &errs.ConfigurationError{Reason: errs.ErrMissingToken.Error()}
	}

	settings := core.Settings{
		ReportPath:         cfg.ReportPath,
		SourceRoots:        append([]string(nil), cfg.SourceRoots...),
		RepoRootDir:        cfg.RepoRoot,
		Encoding:           cfg.Encoding,
		PayloadPath:        cfg.PayloadPath,
		Endpoint:           resolveEndpoint(cfg, env),
		RepoToken:          token,
		ServiceJobID:       jobID,
		ServiceName:        cfg.ServiceName,
		ServicePullRequest: resolvePullRequest(cfg, env),
		Parallel:           cfg.Parallel || envBool(env, global.ParallelEnv),
		GitRepoPath:        cfg.GitRepo,
		Excludes:           append([]string(nil), cfg.Excludes...),
		Workers:            cfg.Workers,
		MaxRetries:         cfg.MaxRetries,
		HTTPTimeout:        cfg.HTTPTimeout,
	}
	if settings.PayloadPath == "" {
		settings.PayloadPath = filepath.Join(os.TempDir(), fmt.Sprintf("coveralls-%s.json", utils.GenerateUUID()))
	}
	if settings.Workers < 1 {
		settings.Workers = 1
	}
	if settings.HTTPTimeout <= 0 {
		settings.HTTPTimeout = global.DefaultHTTPTimeout
	}
	return settings, nil
}

// ResolveToken applies the token precedence: the COVERALLS_REPO_TOKEN environment
// variable, then the RepoToken setting, then the trimmed content of TokenFile. An
// empty result without error means no token is configured.
func ResolveToken(cfg *ReporterConfig, env core.EnvProvider) (string, error) {
	if token, ok := env.Get(global.RepoTokenEnv); ok && strings.TrimSpace(token) != "" {
		return strings.TrimSpace(token), nil
	}
	if cfg.RepoToken != "" {
		return cfg.RepoToken, nil
	}
	if cfg.TokenFile == "" {
		return "", nil
	}
	content, err := env.ReadFile(cfg.TokenFile)
	if err != nil {
		return "", &errs.ConfigurationError{Reason: fmt.Sprintf("unable to read token file %s: %v", cfg.TokenFile, err)}
	}
	token := strings.TrimSpace(string(content))
	if token == "" {
		return "", &errs.ConfigurationError{Reason: fmt.Sprintf("%s: %s", errs.ErrEmptyTokenFile, cfg.TokenFile)}
	}
	return token, nil
}

func resolveJobID(cfg *ReporterConfig, env core.EnvProvider) string {
	if cfg.JobID != "" {
		return cfg.JobID
	}
	if name, ok := global.JobIDEnvVars[cfg.ServiceName]; ok {
		if jobID, ok := env.Get(name); ok && jobID != "" {
			return jobID
		}
	}
	jobID, _ := env.Get(global.JobIDEnv)
	return jobID
}

func resolveEndpoint(cfg *ReporterConfig, env core.EnvProvider) string {
	if endpoint, ok := env.Get(global.EndpointEnv); ok && endpoint != "" {
		return endpoint
	}
	if cfg.Endpoint != "" {
		return cfg.Endpoint
	}
	return global.DefaultEndpoint
}

// resolvePullRequest falls back to the service's pull request variable. Travis sets
// it to "false" outside of pull request builds.
func resolvePullRequest(cfg *ReporterConfig, env core.EnvProvider) string {
	if cfg.PullRequest != "" {
		return cfg.PullRequest
	}
	name, ok := global.PullRequestEnvVars[cfg.ServiceName]
	if !ok {
		return ""
	}
	pr, _ := env.Get(name)
	if pr == "false" {
		return ""
	}
	return pr
}

func envBool(env core.EnvProvider, key string) bool {
	value, ok := env.Get(key)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(value)
	return err == nil && parsed
}
