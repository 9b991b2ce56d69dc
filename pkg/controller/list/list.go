package list

import (
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/pinlint/pkg/action"
	"github.com/suzuki-shunsuke/pinlint/pkg/controller/lint"
	"github.com/suzuki-shunsuke/pinlint/pkg/workflow"
)

// List outputs external actions referenced in target files.
// Files which can't be read or parsed are logged and skipped.
func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	workflowFilePaths, err := c.searchFiles()
	if err != nil {
		return fmt.Errorf("search target files: %w", err)
	}
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.listWorkflow(logE, workflowFilePath, tmpl); err != nil {
			logerr.WithError(logE, err).Error("list actions in workflow")
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) searchFiles() ([]string, error) {
	if len(c.param.WorkflowFilePaths) != 0 {
		return c.param.WorkflowFilePaths, nil
	}
	if len(c.cfg.Files) > 0 {
		return c.searchFilesByGlob()
	}
	files, err := lint.ListWorkflows(c.fs)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return files, nil
}

func (c *Controller) searchFilesByGlob() ([]string, error) {
	files := []string{}
	configFileDir := filepath.Dir(c.param.ConfigFilePath)
	for _, file := range c.cfg.Files {
		matches, err := afero.Glob(c.fs, filepath.Join(configFileDir, file.Pattern))
		if err != nil {
			return nil, fmt.Errorf("search target files: %w", err)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func (c *Controller) listWorkflow(logE *logrus.Entry, workflowFilePath string, tmpl *template.Template) error {
	content, err := afero.ReadFile(c.fs, workflowFilePath)
	if err != nil {
		return fmt.Errorf("read a workflow file: %w", err)
	}
	roots, err := workflow.Parse(content)
	if err != nil {
		return err //nolint:wrapcheck
	}
	for _, pair := range workflow.FindUses(roots) {
		scalar, ok := pair.Value.(*workflow.Scalar)
		if !ok || scalar.Null {
			continue
		}
		ref, err := action.Parse(scalar.Value, scalar.Comment)
		if err != nil {
			logE.WithField("line", pair.KeyLine).WithError(err).Debug("ignore a malformed action reference")
			continue
		}
		if ref.Local || ref.Docker {
			continue
		}
		if c.param.Owner != "" && ref.Owner != c.param.Owner {
			continue
		}
		info := &ActionInfo{
			ActionName: ref.Path,
			RepoOwner:  ref.Owner,
			RepoName:   ref.Repo,
			Version:    ref.Ref,
			Comment:    ref.Comment,
			Pinned:     ref.Pinned(),
			FilePath:   workflowFilePath,
			FileName:   filepath.Base(workflowFilePath),
			LineNumber: pair.KeyLine,
		}
		if err := c.output(info, tmpl); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) output(info *ActionInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// Default CSV format: <FilePath>,<LineNumber>,<ActionName>,<Version>,<Comment>
	fmt.Fprintf(c.stdout, "%s,%d,%s,%s,%s\n", info.FilePath, info.LineNumber, info.ActionName, info.Version, info.Comment)
	return nil
}
