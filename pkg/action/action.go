// Package action parses the value of a `uses:` field into an action reference
// and classifies the ref the reference is pinned to.
package action

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hashicorp/go-version"
)

const dockerPrefix = "docker://"

var (
	fullSHAPattern  = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)
	shortSHAPattern = regexp.MustCompile(`^[0-9a-fA-F]{7,39}$`)
	digestPattern   = regexp.MustCompile(`^sha256:[0-9a-fA-F]{64}$`)
)

var (
	ErrEmpty       = errors.New("uses is empty")
	ErrEmptyPath   = errors.New("action path is empty")
	ErrEmptyRef    = errors.New("ref after @ is empty")
	ErrInvalidPath = errors.New("action path must be owner/repo[/path]")
)

// Reference is a parsed `uses:` value.
// e.g. actions/checkout@11bd71901bbe5b1630ceea73d27597364c9af683 # v4.2.2
type Reference struct {
	Raw     string // the value as written
	Path    string // owner/repo[/path]
	Owner   string
	Repo    string
	SubPath string
	Ref     string // the string after the last @
	Comment string // trailing comment such as v4.2.2. It never affects compliance.
	Local   bool   // ./path/to/action
	Docker  bool   // docker://image:tag
}

// Parse parses a `uses:` value.
// A value without @ is a local action and is returned with Local set.
// docker:// references are returned with Docker set and Path holding the image.
func Parse(uses, comment string) (*Reference, error) {
	ref := &Reference{
		Raw:     uses,
		Comment: normalizeComment(comment),
	}
	uses = strings.TrimSpace(uses)
	if uses == "" {
		return nil, ErrEmpty
	}
	if image, ok := strings.CutPrefix(uses, dockerPrefix); ok {
		ref.Docker = true
		return ref, parseDocker(ref, image)
	}
	idx := strings.LastIndex(uses, "@")
	if idx == -1 {
		ref.Local = true
		ref.Path = uses
		return ref, nil
	}
	ref.Path = uses[:idx]
	ref.Ref = uses[idx+1:]
	if ref.Path == "" {
		return nil, ErrEmptyPath
	}
	if ref.Ref == "" {
		return nil, ErrEmptyRef
	}
	owner, rest, ok := strings.Cut(ref.Path, "/")
	if !ok || owner == "" {
		return nil, ErrInvalidPath
	}
	repo, subPath, _ := strings.Cut(rest, "/")
	if repo == "" {
		return nil, ErrInvalidPath
	}
	ref.Owner = owner
	ref.Repo = repo
	ref.SubPath = subPath
	return ref, nil
}

func parseDocker(ref *Reference, image string) error {
	if image == "" {
		return ErrEmptyPath
	}
	// docker://alpine@sha256:... is pinned by digest.
	// docker://alpine:3.8 or docker://ghcr.io/foo/bar:latest is pinned by tag.
	if name, digest, ok := strings.Cut(image, "@"); ok {
		ref.Path = name
		ref.Ref = digest
		return nil
	}
	ref.Path = image
	slash := strings.LastIndex(image, "/")
	if colon := strings.LastIndex(image, ":"); colon > slash {
		ref.Path = image[:colon]
		ref.Ref = image[colon+1:]
	}
	return nil
}

func normalizeComment(comment string) string {
	comment = strings.TrimSpace(comment)
	comment = strings.TrimLeft(comment, "#")
	comment = strings.TrimSpace(comment)
	// e.g. `# tag=v1.0.0`
	return strings.TrimPrefix(comment, "tag=")
}

// IsFullSHA returns true if ref is a full length commit SHA.
func IsFullSHA(ref string) bool {
	return fullSHAPattern.MatchString(ref)
}

// IsDigest returns true if ref is a sha256 image digest.
func IsDigest(ref string) bool {
	return digestPattern.MatchString(ref)
}

// Pinned returns true if the reference is pinned to a full commit SHA.
// Local and docker references are never pinned in this sense.
func (r *Reference) Pinned() bool {
	return !r.Local && !r.Docker && IsFullSHA(r.Ref)
}

// Name returns the reference without the ref.
func (r *Reference) Name() string {
	if r.Docker {
		return dockerPrefix + r.Path
	}
	return r.Path
}

type RefKind string

const (
	KindSHA      RefKind = "sha"
	KindShortSHA RefKind = "short-sha"
	KindVersion  RefKind = "version"
	KindBranch   RefKind = "branch"
)

// Kind classifies a ref.
// Only KindSHA is compliant.
// A ref which is neither a SHA nor a version is assumed to be a branch.
func Kind(ref string) RefKind {
	if IsFullSHA(ref) {
		return KindSHA
	}
	if shortSHAPattern.MatchString(ref) && !isNumeric(ref) {
		return KindShortSHA
	}
	if _, err := version.NewVersion(ref); err == nil {
		return KindVersion
	}
	return KindBranch
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Describe returns a human readable description of the ref's kind.
func Describe(ref string) string {
	switch Kind(ref) {
	case KindSHA:
		return "commit SHA"
	case KindShortSHA:
		return "short commit SHA"
	case KindVersion:
		return "version tag"
	default:
		return "branch or tag"
	}
}
