package lint

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

var ErrActionsNotPinned = errors.New("actions aren't pinned")

// Run lints target files and outputs findings.
// It returns ErrActionsNotPinned if any finding is found.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	findings := []*Finding{}
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		content, err := afero.ReadFile(c.fs, workflowFilePath)
		if err != nil {
			logerr.WithError(logE, err).Error("read a workflow file")
			findings = append(findings, &Finding{
				File:    workflowFilePath,
				Line:    1,
				RuleID:  ruleUnreadableFile,
				Message: "unreadable file: " + firstLine(err.Error()),
			})
			continue
		}
		findings = append(findings, c.Validate(ctx, logE, workflowFilePath, content)...)
	}
	if err := c.output(findings); err != nil {
		return err
	}
	if len(findings) == 0 {
		return nil
	}
	c.logger.Summary(len(findings), len(workflowFilePaths))
	return ErrActionsNotPinned
}
