// Package lint implements the 'pinlint lint' command.
package lint

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pinlint/pkg/di"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
	version     string
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, version string) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
		version:     version,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	flags := &di.Flags{
		GlobalFlags: r.globalFlags,
		Version:     r.version,
	}
	return &cli.Command{
		Name:  "lint",
		Usage: "Check if GitHub Actions are pinned to full length commit SHAs",
		Description: `Report actions and reusable workflows which aren't pinned to full length commit SHAs.
The exit code is non-zero if any finding is reported.

If no argument is passed, pinlint searches GitHub Actions workflow files from .github/workflows and composite actions.

$ pinlint lint

You can also pass workflow file paths as arguments.

e.g.

$ pinlint lint .github/workflows/test.yaml .github/actions/foo/action.yaml

Findings are output in the format "<file>:<line>: <message>".
You can change the format by --format.

$ pinlint lint --format sarif
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, c, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format. One of text, github, sarif",
				Sources:     cli.EnvVars("PINLINT_FORMAT"),
				Destination: &flags.Format,
			},
			&cli.StringFlag{
				Name:        "docker",
				Usage:       "How docker:// references are handled. exempt ignores them and digest requires sha256 digests",
				Destination: &flags.Docker,
			},
			&cli.BoolFlag{
				Name:        "resolve",
				Usage:       "Get commit SHAs of unpinned actions by GitHub API to suggest the fixed reference",
				Destination: &flags.Resolve,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command, flags *di.Flags) error {
	di.SetEnv(flags, os.Getenv)
	if err := log.Set(r.logE, flags.LogLevel, "auto"); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	flags.Args = c.Args().Slice()
	secrets := &di.Secrets{}
	secrets.SetFromEnv(os.Getenv)
	return di.Lint(ctx, r.logE, flags, secrets) //nolint:wrapcheck
}
