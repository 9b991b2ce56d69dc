package lint

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FormatText   = "text"
	FormatGitHub = "github"
	FormatSARIF  = "sarif"
)

func ValidateFormat(format string) error {
	switch format {
	case "", FormatText, FormatGitHub, FormatSARIF:
		return nil
	default:
		return errors.New("format must be text, github, or sarif")
	}
}

func (c *Controller) output(findings []*Finding) error {
	switch c.param.Format {
	case FormatSARIF:
		return c.outputSARIF(findings)
	case FormatGitHub:
		c.outputGitHub(findings)
		return nil
	default:
		c.outputText(findings)
		return nil
	}
}

// outputText outputs findings in the format `path:line: message`.
func (c *Controller) outputText(findings []*Finding) {
	for _, f := range findings {
		fmt.Fprintf(c.param.Stdout, "%s:%d: %s\n", f.File, f.Line, f.Message)
	}
}

// outputGitHub outputs findings as GitHub Actions workflow commands.
// https://docs.github.com/en/actions/reference/workflows-and-actions/workflow-commands#setting-an-error-message
func (c *Controller) outputGitHub(findings []*Finding) {
	for _, f := range findings {
		fmt.Fprintf(c.param.Stdout, "::error file=%s,line=%d,title=%s::%s\n",
			escapeProperty(f.File), f.Line, escapeProperty(f.RuleID), escapeData(f.Message))
	}
}

func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}
