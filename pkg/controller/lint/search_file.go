package lint

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var defaultPatterns = []string{ //nolint:gochecknoglobals
	".github/workflows/*.yml",
	".github/workflows/*.yaml",
	"action.yml",
	"action.yaml",
	"*/action.yml",
	"*/action.yaml",
	"*/*/action.yml",
	"*/*/action.yaml",
	"*/*/*/action.yml",
	"*/*/*/action.yaml",
}

// searchFiles returns target files.
// Files passed as arguments take precedence over files in the configuration file.
// If neither is given, workflow files and composite actions are searched.
func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		configFileDir := filepath.Dir(c.param.ConfigFilePath)
		patterns := make([]string, len(c.cfg.Files))
		for i, file := range c.cfg.Files {
			patterns[i] = filepath.Join(configFileDir, file.Pattern)
		}
		return glob(c.fs, patterns)
	}
	return ListWorkflows(c.fs)
}

// ListWorkflows returns GitHub Actions workflow files and composite action files.
func ListWorkflows(fs afero.Fs) ([]string, error) {
	return glob(fs, defaultPatterns)
}

func glob(fs afero.Fs, patterns []string) ([]string, error) {
	files := []string{}
	found := map[string]struct{}{}
	for _, pattern := range patterns {
		matches, err := afero.Glob(fs, pattern)
		if err != nil {
			return nil, fmt.Errorf("look for workflow or composite action files using glob: %w", logerr.WithFields(err, logrus.Fields{
				"pattern": pattern,
			}))
		}
		for _, match := range matches {
			if _, ok := found[match]; ok {
				continue
			}
			found[match] = struct{}{}
			files = append(files, match)
		}
	}
	return files, nil
}
