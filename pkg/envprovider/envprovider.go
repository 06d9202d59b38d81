// Package envprovider gives the config layer access to the process environment.
package envprovider

import (
	"os"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
)

type processEnv struct{}

// New returns an EnvProvider backed by the process environment and the filesystem.
func New() core.EnvProvider {
	return processEnv{}
}

func (processEnv) Get(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (processEnv) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

type staticEnv struct {
	vars  map[string]string
	files map[string]string
}

// NewStatic returns an EnvProvider serving vars and in-memory files.
func NewStatic(vars, files map[string]string) core.EnvProvider {
	return staticEnv{vars: vars, files: files}
}

func (s staticEnv) Get(key string) (string, bool) {
	value, ok := s.vars[key]
	return value, ok
}

func (s staticEnv) ReadFile(path string) ([]byte, error) {
	content, ok := s.files[path]
	if !ok {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	return []byte(content), nil
}
