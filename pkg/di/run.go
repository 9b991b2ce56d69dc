// Package di wires the dependencies of pinlint commands.
package di

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/pinlint/pkg/config"
	"github.com/suzuki-shunsuke/pinlint/pkg/controller/lint"
	"github.com/suzuki-shunsuke/pinlint/pkg/github"
)

// Lint validates flags, reads the configuration file, and runs the validator.
func Lint(ctx context.Context, logE *logrus.Entry, flags *Flags, secrets *Secrets) error {
	if flags.IsGitHubActions {
		color.NoColor = false
	}
	fs := afero.NewOsFs()
	configFilePath, cfg, err := ReadConfig(fs, flags.Config)
	if err != nil {
		return err
	}
	param, err := buildParam(flags, configFilePath)
	if err != nil {
		return err
	}
	var resolver lint.CommitResolver
	if flags.Resolve {
		gh := github.New(ctx, secrets.GitHubToken)
		resolver = github.NewCommitResolver(gh.Repositories)
	}
	ctrl := lint.New(fs, cfg, resolver, param)
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// ReadConfig finds and reads the configuration file.
// It returns the path of the configuration file, which is empty if no file is found.
func ReadConfig(fs afero.Fs, configFilePath string) (string, *config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	p, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return "", nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, p); err != nil {
		return "", nil, fmt.Errorf("read configuration file: %w", err)
	}
	return p, cfg, nil
}

func buildParam(flags *Flags, configFilePath string) (*lint.ParamRun, error) {
	if err := lint.ValidateFormat(flags.Format); err != nil {
		return nil, err //nolint:wrapcheck
	}
	if err := config.ValidateDocker(flags.Docker); err != nil {
		return nil, errors.New("--docker must be exempt or digest")
	}
	format := flags.Format
	if format == "" {
		format = lint.FormatText
	}
	return &lint.ParamRun{
		WorkflowFilePaths: flags.Args,
		ConfigFilePath:    configFilePath,
		Format:            format,
		Docker:            flags.Docker,
		Version:           flags.Version,
		Stdout:            os.Stdout,
		Stderr:            os.Stderr,
	}, nil
}
