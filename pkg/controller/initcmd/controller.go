// Package initcmd implements the 'pinlint init' command.
// It generates a configuration file (.pinlint.yaml) with commented examples.
package initcmd

import "github.com/spf13/afero"

type Controller struct {
	fs afero.Fs
}

func New(fs afero.Fs) *Controller {
	return &Controller{fs: fs}
}
