package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/pinlint/refs/heads/main/json-schema/pinlint.json
# pinlint - https://github.com/suzuki-shunsuke/pinlint
version: 1
# files:
#   - pattern: .github/workflows/*.yaml
#   - pattern: "*/action.yaml"

# How docker:// references are handled.
# exempt: ignore them (default)
# digest: require docker://<image>@sha256:<digest>
# docker: exempt

ignore_actions:
# - name: ROKT/rokt-workflows/.*
#   name_format: regexp
# - name: actions/*
#   name_format: glob
#   ref: main
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file if it doesn't exist.
func (c *Controller) Init(configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	return nil
}
