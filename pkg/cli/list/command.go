// Package list implements the 'pinlint list' command.
package list

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pinlint/pkg/cli/flag"
	"github.com/suzuki-shunsuke/pinlint/pkg/controller/list"
	"github.com/suzuki-shunsuke/pinlint/pkg/di"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/log"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	Owner        string
	LineTemplate string
}

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
	flags := &Flags{}
	return &cli.Command{
		Name:  "list",
		Usage: "List GitHub Actions and reusable workflows",
		Description: `List GitHub Actions and reusable workflows from workflow files.
Local actions and docker:// references aren't listed.

$ pinlint list

Output format (default CSV):
<FilePath>,<LineNumber>,<ActionName>,<Version>,<Comment>

Filter by owner:
$ pinlint list --owner actions

Custom output format using Go template:
$ pinlint list --line-template "{{.RepoOwner}}/{{.RepoName}} {{.Pinned}}"

Available template fields:
  ActionName - Full action name (e.g., actions/checkout)
  RepoOwner  - Repository owner (e.g., actions)
  RepoName   - Repository name (e.g., checkout)
  Version    - Version/ref (e.g., v4 or commit SHA)
  Comment    - Version comment (e.g., v4.0.0)
  Pinned     - true if Version is a full length commit SHA
  FilePath   - Full file path
  FileName   - Base file name
  LineNumber - Line number in the file
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, c, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Filter actions by owner",
				Destination: &flags.Owner,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command, flags *Flags) error {
	if err := log.Set(r.logE, r.globalFlags.LogLevel, "auto"); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	fs := afero.NewOsFs()
	cfgFilePath, cfg, err := di.ReadConfig(fs, r.globalFlags.Config)
	if err != nil {
		return err //nolint:wrapcheck
	}
	ctrl := list.New(fs, cfg, &list.Param{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    cfgFilePath,
		Owner:             flags.Owner,
		LineTemplate:      flags.LineTemplate,
	}, os.Stdout)
	return ctrl.List(ctx, r.logE) //nolint:wrapcheck
}
