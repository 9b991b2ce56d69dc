// Package list implements the 'pinlint list' command.
// It lists external actions and reusable workflows referenced by workflow
// files, with support for filtering by owner and custom output formatting.
package list

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pinlint/pkg/config"
)

type Controller struct {
	fs     afero.Fs
	cfg    *config.Config
	param  *Param
	stdout io.Writer
}

type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	Owner             string
	LineTemplate      string
}

func New(fs afero.Fs, cfg *config.Config, param *Param, stdout io.Writer) *Controller {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Controller{
		fs:     fs,
		cfg:    cfg,
		param:  param,
		stdout: stdout,
	}
}
