package action_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/pinlint/pkg/action"
)

func TestParse(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		uses    string
		comment string
		exp     *action.Reference
		expErr  error
	}{
		{
			name: "tag",
			uses: "actions/checkout@v4",
			exp: &action.Reference{
				Raw:   "actions/checkout@v4",
				Path:  "actions/checkout",
				Owner: "actions",
				Repo:  "checkout",
				Ref:   "v4",
			},
		},
		{
			name:    "sha with comment",
			uses:    "actions/checkout@11bd71901bbe5b1630ceea73d27597364c9af683",
			comment: "#v4.2.2",
			exp: &action.Reference{
				Raw:     "actions/checkout@11bd71901bbe5b1630ceea73d27597364c9af683",
				Path:    "actions/checkout",
				Owner:   "actions",
				Repo:    "checkout",
				Ref:     "11bd71901bbe5b1630ceea73d27597364c9af683",
				Comment: "v4.2.2",
			},
		},
		{
			name:    "tag= comment",
			uses:    "actions/checkout@main",
			comment: " # tag=v1.0.0",
			exp: &action.Reference{
				Raw:     "actions/checkout@main",
				Path:    "actions/checkout",
				Owner:   "actions",
				Repo:    "checkout",
				Ref:     "main",
				Comment: "v1.0.0",
			},
		},
		{
			name: "reusable workflow",
			uses: "suzuki-shunsuke/workflows/.github/workflows/test.yaml@v1.0.0",
			exp: &action.Reference{
				Raw:     "suzuki-shunsuke/workflows/.github/workflows/test.yaml@v1.0.0",
				Path:    "suzuki-shunsuke/workflows/.github/workflows/test.yaml",
				Owner:   "suzuki-shunsuke",
				Repo:    "workflows",
				SubPath: ".github/workflows/test.yaml",
				Ref:     "v1.0.0",
			},
		},
		{
			name: "split on the last @",
			uses: "foo/bar@baz@v1",
			exp: &action.Reference{
				Raw:   "foo/bar@baz@v1",
				Path:  "foo/bar@baz",
				Owner: "foo",
				Repo:  "bar@baz",
				Ref:   "v1",
			},
		},
		{
			name: "local",
			uses: "./actions/generate-changelog",
			exp: &action.Reference{
				Raw:   "./actions/generate-changelog",
				Path:  "./actions/generate-changelog",
				Local: true,
			},
		},
		{
			name: "docker tag",
			uses: "docker://alpine:3.8",
			exp: &action.Reference{
				Raw:    "docker://alpine:3.8",
				Path:   "alpine",
				Ref:    "3.8",
				Docker: true,
			},
		},
		{
			name: "docker digest",
			uses: "docker://ghcr.io/foo/bar@sha256:0000000000000000000000000000000000000000000000000000000000000000",
			exp: &action.Reference{
				Raw:    "docker://ghcr.io/foo/bar@sha256:0000000000000000000000000000000000000000000000000000000000000000",
				Path:   "ghcr.io/foo/bar",
				Ref:    "sha256:0000000000000000000000000000000000000000000000000000000000000000",
				Docker: true,
			},
		},
		{
			name: "docker registry port without tag",
			uses: "docker://localhost:5000/foo",
			exp: &action.Reference{
				Raw:    "docker://localhost:5000/foo",
				Path:   "localhost:5000/foo",
				Docker: true,
			},
		},
		{
			name:   "empty",
			uses:   "  ",
			expErr: action.ErrEmpty,
		},
		{
			name:   "empty ref",
			uses:   "actions/checkout@",
			expErr: action.ErrEmptyRef,
		},
		{
			name:   "empty path",
			uses:   "@v4",
			expErr: action.ErrEmptyPath,
		},
		{
			name:   "no repository",
			uses:   "actions@v4",
			expErr: action.ErrInvalidPath,
		},
		{
			name:   "empty repository",
			uses:   "actions/@v4",
			expErr: action.ErrInvalidPath,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ref, err := action.Parse(d.uses, d.comment)
			if d.expErr != nil {
				if !errors.Is(err, d.expErr) {
					t.Fatalf("wanted %v, got %v", d.expErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, ref); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()
	data := []struct {
		ref string
		exp action.RefKind
	}{
		{ref: "11bd71901bbe5b1630ceea73d27597364c9af683", exp: action.KindSHA},
		{ref: "11BD71901BBE5B1630CEEA73D27597364C9AF683", exp: action.KindSHA},
		{ref: "11bd719", exp: action.KindShortSHA},
		{ref: "v4", exp: action.KindVersion},
		{ref: "v1.2.4", exp: action.KindVersion},
		{ref: "1.0.0-beta.1", exp: action.KindVersion},
		{ref: "2024", exp: action.KindVersion},
		{ref: "main", exp: action.KindBranch},
		{ref: "release-1", exp: action.KindBranch},
	}
	for _, d := range data {
		t.Run(d.ref, func(t *testing.T) {
			t.Parallel()
			if got := action.Kind(d.ref); got != d.exp {
				t.Fatalf("wanted %s, got %s", d.exp, got)
			}
		})
	}
}

func TestReference_Pinned(t *testing.T) {
	t.Parallel()
	data := []struct {
		name string
		uses string
		exp  bool
	}{
		{name: "sha", uses: "actions/checkout@11bd71901bbe5b1630ceea73d27597364c9af683", exp: true},
		{name: "upper case sha", uses: "actions/checkout@11BD71901BBE5B1630CEEA73D27597364C9AF683", exp: true},
		{name: "tag", uses: "actions/checkout@v4", exp: false},
		{name: "branch", uses: "actions/checkout@main", exp: false},
		{name: "short sha", uses: "actions/checkout@11bd719", exp: false},
		{name: "local", uses: "./foo", exp: false},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			ref, err := action.Parse(d.uses, "")
			if err != nil {
				t.Fatal(err)
			}
			if got := ref.Pinned(); got != d.exp {
				t.Fatalf("wanted %v, got %v", d.exp, got)
			}
		})
	}
}
