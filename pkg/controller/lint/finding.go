package lint

const (
	ruleUnpinnedAction      = "unpinned-action"
	ruleUnpinnedDockerImage = "unpinned-docker-image"
	ruleMalformedReference  = "malformed-reference"
	ruleUnparsableFile      = "unparsable-file"
	ruleUnreadableFile      = "unreadable-file"
)

// Finding is a lint violation.
type Finding struct {
	File    string
	Line    int
	Uses    string
	Ref     string
	RuleID  string
	Message string
}
