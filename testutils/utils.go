package testutils

import (
	"fmt"
	"os"
	"path"
	"runtime"

	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
)

// getCurrentWorkingDir give the file path of this file
func getCurrentWorkingDir() (string, error) {
	_, filename, _, ok := runtime.Caller(1)
	if !ok {
		return "", errs.New("runtime.Calller(1) was unable to recover information")
	}
	filepath := path.Join(path.Dir(filename), "../")
	return filepath, nil
}

// GetLogger returns a dummy lumber.Logger.
func GetLogger() (lumber.Logger, error) {
	logger, err := lumber.NewLogger(lumber.LoggingConfig{ConsoleLevel: lumber.Debug}, true, lumber.InstanceLogrusLogger)
	if err != nil {
		return nil, err
	}

	return logger, nil
}

// Path returns the absolute path of a file relative to the repository root.
func Path(relativePath string) (string, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return "", err
	}
	return path.Join(cwd, relativePath), nil
}

// LoadFile reads a file relative to the repository root.
func LoadFile(relativePath string) ([]byte, error) {
	cwd, err := getCurrentWorkingDir()
	if err != nil {
		return nil, err
	}
	absPath := fmt.Sprintf("%s/%s", cwd, relativePath)
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}
	return data, err
}

// WriteFile creates dir/name with the given content, creating parents as needed.
func WriteFile(dir, name, content string) (string, error) {
	location := path.Join(dir, name)
	if err := os.MkdirAll(path.Dir(location), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(location, []byte(content), 0644); err != nil {
		return "", err
	}
	return location, nil
}
