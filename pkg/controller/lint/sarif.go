package lint

import (
	"encoding/json"
	"fmt"

	"github.com/suzuki-shunsuke/pinlint/pkg/sarif"
)

var rules = []sarif.Rule{ //nolint:gochecknoglobals
	{
		ID:               ruleUnpinnedAction,
		ShortDescription: sarif.Message{Text: "GitHub Action is not pinned to a full length commit SHA"},
		DefaultConfiguration: &sarif.ReportingConfiguration{
			Level: "error",
		},
	},
	{
		ID:               ruleUnpinnedDockerImage,
		ShortDescription: sarif.Message{Text: "Docker image is not pinned to a sha256 digest"},
		DefaultConfiguration: &sarif.ReportingConfiguration{
			Level: "error",
		},
	},
	{
		ID:               ruleMalformedReference,
		ShortDescription: sarif.Message{Text: "uses is empty or malformed"},
		DefaultConfiguration: &sarif.ReportingConfiguration{
			Level: "error",
		},
	},
	{
		ID:               ruleUnparsableFile,
		ShortDescription: sarif.Message{Text: "Failed to parse a file as YAML"},
		DefaultConfiguration: &sarif.ReportingConfiguration{
			Level: "error",
		},
	},
	{
		ID:               ruleUnreadableFile,
		ShortDescription: sarif.Message{Text: "Failed to read a file"},
		DefaultConfiguration: &sarif.ReportingConfiguration{
			Level: "error",
		},
	},
}

// outputSARIF outputs findings in SARIF format to stdout.
func (c *Controller) outputSARIF(findings []*Finding) error {
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "pinlint",
						InformationURI: "https://github.com/suzuki-shunsuke/pinlint",
						Version:        c.param.Version,
						Rules:          rules,
					},
				},
				Results: buildSARIFResults(findings),
			},
		},
	}
	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func buildSARIFResults(findings []*Finding) []sarif.Result {
	results := make([]sarif.Result, 0, len(findings))
	for _, f := range findings {
		results = append(results, sarif.Result{
			RuleID:  f.RuleID,
			Level:   "error",
			Message: sarif.Message{Text: f.Message},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{
							URI: f.File,
						},
						Region: sarif.Region{
							StartLine: f.Line,
						},
					},
				},
			},
		})
	}
	return results
}
