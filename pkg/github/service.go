package github

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// RepositoriesService is the subset of the GitHub Repositories API pinlint uses.
type RepositoriesService interface {
	GetCommitSHA1(ctx context.Context, owner, repo, ref, lastSHA string) (string, *Response, error)
}

type getCommitSHA1Result struct {
	sha string
	err error
}

// CommitResolver resolves a tag or branch to a commit SHA.
// Results including errors are cached per owner/repo/ref so that an action
// used in many workflows is resolved only once.
type CommitResolver struct {
	repositoriesService RepositoriesService
	commits             map[string]*getCommitSHA1Result
}

func NewCommitResolver(repositoriesService RepositoriesService) *CommitResolver {
	return &CommitResolver{
		repositoriesService: repositoriesService,
		commits:             map[string]*getCommitSHA1Result{},
	}
}

// Resolve returns the commit SHA of ref.
// https://docs.github.com/en/rest/commits/commits#get-a-commit
func (r *CommitResolver) Resolve(ctx context.Context, logE *logrus.Entry, owner, repo, ref string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s", owner, repo, ref)
	if a, ok := r.commits[key]; ok {
		return a.sha, a.err
	}
	sha, _, err := r.repositoriesService.GetCommitSHA1(ctx, owner, repo, ref, "")
	if err != nil {
		err = fmt.Errorf("get a commit SHA: %w", logerr.WithFields(err, logrus.Fields{
			"repo_owner": owner,
			"repo_name":  repo,
			"ref":        ref,
		}))
	}
	r.commits[key] = &getCommitSHA1Result{
		sha: sha,
		err: err,
	}
	logE.WithFields(logrus.Fields{
		"action": owner + "/" + repo,
		"ref":    ref,
		"sha":    sha,
	}).Debug("resolved a commit SHA")
	return sha, err
}
