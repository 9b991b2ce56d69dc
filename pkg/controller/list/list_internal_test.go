package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const workflowContent = `jobs:
  release:
    uses: suzuki-shunsuke/workflows/.github/workflows/release.yaml@v1.0.0
  test:
    steps:
      - uses: actions/checkout@11bd71901bbe5b1630ceea73d27597364c9af683
      - uses: ./actions/foo
      - uses: docker://alpine:3.8
      - uses: actions/setup-go@v5
`

func TestController_List(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		param *Param
		exp   string
	}{
		{
			name: "csv",
			param: &Param{
				WorkflowFilePaths: []string{".github/workflows/ci.yaml"},
			},
			exp: `.github/workflows/ci.yaml,3,suzuki-shunsuke/workflows/.github/workflows/release.yaml,v1.0.0,
.github/workflows/ci.yaml,6,actions/checkout,11bd71901bbe5b1630ceea73d27597364c9af683,
.github/workflows/ci.yaml,9,actions/setup-go,v5,
`,
		},
		{
			name: "owner and template",
			param: &Param{
				WorkflowFilePaths: []string{".github/workflows/ci.yaml"},
				Owner:             "actions",
				LineTemplate:      "{{.FileName}}:{{.LineNumber}} {{.RepoOwner}}/{{.RepoName}} {{.Pinned}}",
			},
			exp: `ci.yaml:6 actions/checkout true
ci.yaml:9 actions/setup-go false
`,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, ".github/workflows/ci.yaml", []byte(workflowContent), 0o644); err != nil {
				t.Fatal(err)
			}
			stdout := &bytes.Buffer{}
			ctrl := New(fs, nil, d.param, stdout)
			if err := ctrl.List(context.Background(), logrus.NewEntry(logrus.New())); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, stdout.String()); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_parseTemplate(t *testing.T) {
	t.Parallel()
	ctrl := New(afero.NewMemMapFs(), nil, &Param{LineTemplate: "{{.Foo"}, &bytes.Buffer{})
	if _, err := ctrl.parseTemplate(); err == nil {
		t.Fatal("error must be returned")
	}
}
