package di

import (
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/flag"
)

// Flags holds all command-line flags for the lint command.
type Flags struct {
	*flag.GlobalFlags

	Format  string
	Docker  string
	Resolve bool

	IsGitHubActions bool

	Version string
	Args    []string
}
