// Package github provides the GitHub API client used to look up the commit SHA
// of an action's tag or branch.
package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"
)

type (
	Client   = github.Client
	Response = github.Response
)

// New creates a GitHub API client.
// If token is empty, the client accesses the API without authentication.
func New(ctx context.Context, token string) *Client {
	return github.NewClient(getHTTPClientForGitHub(ctx, token))
}

func getHTTPClientForGitHub(ctx context.Context, token string) *http.Client {
	if token == "" {
		return http.DefaultClient
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	))
}
