package gitinfo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LambdaTest/coveralls-reporter/testutils"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepo(t *testing.T) (string, *git.Repository, plumbing.Hash) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	_, err = testutils.WriteFile(dir, "src/Foo.scala", "object Foo\n")
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("src/Foo.scala")
	require.NoError(t, err)

	hash, err := wt.Commit("Add Foo\n\nwith a body\n", &git.CommitOptions{
		Author:    &object.Signature{Name: "Jane Author", Email: "jane@example.com", When: time.Now()},
		Committer: &object.Signature{Name: "Joe Committer", Email: "joe@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	for name, url := range map[string]string{
		"upstream": "https://github.com/acme/widgets.git",
		"origin":   "git@github.com:jane/widgets.git",
	} {
		_, err = repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		require.NoError(t, err)
	}
	return dir, repo, hash
}

func Test_collector_Collect(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	dir, repo, hash := initRepo(t)
	head, err := repo.Head()
	require.NoError(t, err)

	info, err := New(logger).Collect(filepath.Join(dir, "src"))
	require.NoError(t, err)

	assert.Equal(t, hash.String(), info.Head.ID)
	assert.Equal(t, "Jane Author", info.Head.AuthorName)
	assert.Equal(t, "jane@example.com", info.Head.AuthorEmail)
	assert.Equal(t, "Joe Committer", info.Head.CommitterName)
	assert.Equal(t, "joe@example.com", info.Head.CommitterEmail)
	assert.Equal(t, "Add Foo\n\nwith a body", info.Head.Message)
	assert.Equal(t, head.Name().Short(), info.Branch)
	assert.Equal(t, []string{"origin", "upstream"}, []string{info.Remotes[0].Name, info.Remotes[1].Name})
	assert.Equal(t, "git@github.com:jane/widgets.git", info.Remotes[0].URL)
}

func Test_collector_DetachedHead(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)
	dir, repo, hash := initRepo(t)
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Hash: hash}))

	info, err := New(logger).Collect(dir)
	require.NoError(t, err)
	assert.Equal(t, hash.String(), info.Head.ID)
	assert.Empty(t, info.Branch)
}

func Test_collector_Errors(t *testing.T) {
	logger, err := testutils.GetLogger()
	require.NoError(t, err)

	empty := t.TempDir()
	_, err = git.PlainInit(empty, false)
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want error
	}{
		{"not a repository", t.TempDir(), git.ErrRepositoryNotExists},
		{"missing directory", filepath.Join(os.TempDir(), "does-not-exist-coveralls"), nil},
		{"repository without commits", empty, plumbing.ErrReferenceNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := New(logger).Collect(tt.path)
			assert.Error(t, err)
			assert.Nil(t, info)
			if tt.want != nil {
				assert.True(t, errors.Is(err, tt.want), "cause lost: %v", err)
			}
		})
	}
}
