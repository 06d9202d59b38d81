// Package gitinfo reads the head commit, branch and remotes of a git repository.
package gitinfo

import (
	"sort"
	"strings"

	"github.com/LambdaTest/coveralls-reporter/pkg/core"
	"github.com/LambdaTest/coveralls-reporter/pkg/lumber"
	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v5"
)

type collector struct {
	logger lumber.Logger
}

// New returns a GitInfoCollector backed by go-git.
func New(logger lumber.Logger) core.GitInfoCollector {
	return &collector{logger: logger}
}

// Collect opens the repository containing repoPath. The branch is left empty when
// HEAD is detached.
func (c *collector) Collect(repoPath string) (*core.GitInfo, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open repository %s", repoPath)
	}
	ref, err := repo.Head()
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve HEAD")
	}
	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read commit %s", ref.Hash())
	}

	info := &core.GitInfo{
		Head: core.GitHead{
			ID:             commit.Hash.String(),
			AuthorName:     commit.Author.Name,
			AuthorEmail:    commit.Author.Email,
			CommitterName:  commit.Committer.Name,
			CommitterEmail: commit.Committer.Email,
			Message:        strings.TrimSpace(commit.Message),
		},
		Remotes: []core.GitRemote{},
	}
	if ref.Name().IsBranch() {
		info.Branch = ref.Name().Short()
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list remotes")
	}
	for _, remote := range remotes {
		cfg := remote.Config()
		if len(cfg.URLs) == 0 {
			continue
		}
		info.Remotes = append(info.Remotes, core.GitRemote{Name: cfg.Name, URL: cfg.URLs[0]})
	}
	sort.Slice(info.Remotes, func(i, j int) bool {
		return info.Remotes[i].Name < info.Remotes[j].Name
	})

	c.logger.Debugf("collected git metadata for %s at %s", repoPath, info.Head.ID)
	return info, nil
}
