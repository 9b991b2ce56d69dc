package list

// ActionInfo is an external action or reusable workflow referenced in a file.
// It is passed to the line template.
type ActionInfo struct {
	ActionName string // owner/repo or owner/repo/path
	RepoOwner  string
	RepoName   string
	Version    string // tag, branch, or commit SHA
	Comment    string // e.g. v4.0.0
	Pinned     bool
	FilePath   string
	FileName   string
	LineNumber int
}
