// Package lint implements the SHA pin validator.
// It parses GitHub Actions workflow and composite action files, finds every
// step and job which references an external action or reusable workflow with
// `uses:`, and reports references that aren't pinned to a full length commit
// SHA. Findings are written in a format the calling linter framework can read.
package lint

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pinlint/pkg/config"
)

type Controller struct {
	fs       afero.Fs
	cfg      *config.Config
	param    *ParamRun
	resolver CommitResolver
	logger   *Logger
}

// CommitResolver looks up the commit SHA of a tag or branch.
// It is used only to suggest the exact SHA-pinned reference.
type CommitResolver interface {
	Resolve(ctx context.Context, logE *logrus.Entry, owner, repo, ref string) (string, error)
}

type ParamRun struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Format            string
	Docker            string
	Version           string
	Stdout            io.Writer
	Stderr            io.Writer
}

// New creates a Controller.
// resolver may be nil. Then no GitHub API is called.
func New(fs afero.Fs, cfg *config.Config, resolver CommitResolver, param *ParamRun) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		fs:       fs,
		cfg:      cfg,
		param:    param,
		resolver: resolver,
		logger:   NewLogger(param.Stderr),
	}
}

func (c *Controller) dockerPolicy() string {
	if c.param.Docker != "" {
		return c.param.Docker
	}
	if c.cfg.Docker != "" {
		return c.cfg.Docker
	}
	return config.DockerExempt
}
