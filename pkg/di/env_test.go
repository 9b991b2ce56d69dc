package di_test

import (
	"testing"

	"github.com/suzuki-shunsuke/pinlint/pkg/di"
)

func TestSecrets_SetFromEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name           string
		env            map[string]string
		expGitHubToken string
	}{
		{
			name:           "empty",
			env:            map[string]string{},
			expGitHubToken: "",
		},
		{
			name:           "github token only",
			env:            map[string]string{"GITHUB_TOKEN": "gh_token"},
			expGitHubToken: "gh_token",
		},
		{
			name:           "pinlint token takes precedence",
			env:            map[string]string{"GITHUB_TOKEN": "gh_token", "PINLINT_GITHUB_TOKEN": "pinlint_token"},
			expGitHubToken: "pinlint_token",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			s := &di.Secrets{}
			s.SetFromEnv(func(key string) string {
				return d.env[key]
			})
			if s.GitHubToken != d.expGitHubToken {
				t.Errorf("GitHubToken: wanted %q, got %q", d.expGitHubToken, s.GitHubToken)
			}
		})
	}
}

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name               string
		env                map[string]string
		expIsGitHubActions bool
	}{
		{
			name:               "empty",
			env:                map[string]string{},
			expIsGitHubActions: false,
		},
		{
			name:               "GitHub Actions",
			env:                map[string]string{"GITHUB_ACTIONS": "true"},
			expIsGitHubActions: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			flags := &di.Flags{}
			di.SetEnv(flags, func(key string) string {
				return d.env[key]
			})
			if flags.IsGitHubActions != d.expIsGitHubActions {
				t.Errorf("IsGitHubActions: wanted %v, got %v", d.expIsGitHubActions, flags.IsGitHubActions)
			}
		})
	}
}
