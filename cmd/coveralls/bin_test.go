package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/LambdaTest/coveralls-reporter/testutils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type received struct {
	RepoToken   string `json:"repo_token"`
	SourceFiles []struct {
		Name string `json:"name"`
	} `json:"source_files"`
}

// setupProject creates a project in a fresh working directory and returns its root.
func setupProject(t *testing.T) string {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := t.TempDir()
	t.Chdir(root)
	t.Setenv("HOME", root)
	t.Setenv("COVERALLS_REPO_TOKEN", "envtok")
	t.Setenv("COVERALLS_ENDPOINT", "")

	report, err := testutils.LoadFile(testutils.CoberturaReportPath)
	require.NoError(t, err)
	_, err = testutils.WriteFile(root, "target/cobertura.xml", string(report))
	require.NoError(t, err)
	_, err = testutils.WriteFile(root, "core/src/main/scala/com/acme/core/Greeter.scala", "object Greeter\n")
	require.NoError(t, err)
	_, err = testutils.WriteFile(root, "api/src/main/scala/com/acme/api/Routes.scala", "object Routes\n")
	require.NoError(t, err)
	return root
}

func newServer(t *testing.T, status int, body string, payload *received) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		file, _, err := r.FormFile("json_file")
		if err == nil {
			data, _ := io.ReadAll(file)
			_ = json.Unmarshal(data, payload)
			file.Close()
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) error {
	cmd := RootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRootCommand_Upload(t *testing.T) {
	root := setupProject(t)
	payload := new(received)
	server := newServer(t, http.StatusOK, `{"message":"Job #1.1","url":"https://coveralls.io/jobs/1"}`, payload)

	err := execute(t,
		"--reportPath", "target/cobertura.xml",
		"--sourceRoots", "core/src/main/scala,api/src/main/scala",
		"--excludes", "**/generated/**",
		"--endpoint", server.URL,
		"--payloadPath", filepath.Join(root, "build", "coveralls.json"),
		"--workers", "2",
		"--failOnError",
	)
	require.NoError(t, err)

	assert.Equal(t, "envtok", payload.RepoToken)
	require.Len(t, payload.SourceFiles, 2)
	assert.Equal(t, "core/src/main/scala/com/acme/core/Greeter.scala", payload.SourceFiles[0].Name)
	assert.Equal(t, "api/src/main/scala/com/acme/api/Routes.scala", payload.SourceFiles[1].Name)
	assert.FileExists(t, filepath.Join(root, "build", "coveralls.json"))
}

func TestRootCommand_FailPolicy(t *testing.T) {
	tests := []struct {
		name        string
		failOnError bool
		wantErr     bool
	}{
		{"fail build", true, true},
		{"log and continue", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t)
			server := newServer(t, http.StatusUnprocessableEntity,
				`{"error": true, "message": "Couldn't find a repository matching this job."}`, new(received))

			args := []string{
				"--reportPath", "target/cobertura.xml",
				"--sourceRoots", "core/src/main/scala,api/src/main/scala",
				"--endpoint", server.URL,
			}
			if tt.failOnError {
				args = append(args, "--failOnError")
			}
			err := execute(t, args...)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "Couldn't find a repository matching this job.")
		})
	}
}

func TestRootCommand_MissingReport(t *testing.T) {
	setupProject(t)
	server := newServer(t, http.StatusOK, `{"message":"ok"}`, new(received))
	args := []string{"--reportPath", "target/absent.xml", "--endpoint", server.URL}

	assert.NoError(t, execute(t, args...))

	viper.Reset()
	assert.Error(t, execute(t, append(args, "--failOnError")...))
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	setupProject(t)
	err := execute(t, "--reportPath", "target/cobertura.xml", "--encoding", "EBCDIC-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding")
}
