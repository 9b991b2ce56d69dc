package di

// Secrets holds the token for the GitHub API.
type Secrets struct {
	GitHubToken string
}

// SetFromEnv sets secrets from environment variables.
func (s *Secrets) SetFromEnv(getEnv func(string) string) {
	s.GitHubToken = getEnv("PINLINT_GITHUB_TOKEN")
	if s.GitHubToken == "" {
		s.GitHubToken = getEnv("GITHUB_TOKEN")
	}
}

// SetEnv populates flags from environment variables.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
}
