// Package initcmd implements the 'pinlint init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pinlint/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .pinlint.yaml if it doesn't exist",
		Description: `Create .pinlint.yaml if it doesn't exist

$ pinlint init

You can also pass configuration file path.

e.g.

$ pinlint init .github/pinlint.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, "auto"); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	ctrl := initcmd.New(afero.NewOsFs())
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".pinlint.yaml"
	}
	return ctrl.Init(configFilePath) //nolint:wrapcheck
}
