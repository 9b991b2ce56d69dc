// Package cli defines the command line interface of pinlint.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/lint"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/list"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:                  "pinlint",
		Usage:                 "Check if GitHub Actions are pinned to full length commit SHAs",
		Version:               ldFlags.Version + " (" + ldFlags.Commit + ")",
		Flags:                 globalFlags.Flags(),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			lint.New(logE, globalFlags, ldFlags.Version),
			list.New(logE, globalFlags),
			initcmd.New(logE, globalFlags),
			newVersionCommand(),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
