package config

import (
	"testing"

	"github.com/spf13/afero"
)

func Test_validateSchemaVersion(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		version int
		wantErr bool
	}{
		{name: "version 0 - empty", version: 0, wantErr: false},
		{name: "version 1 - valid", version: 1, wantErr: false},
		{name: "version 2 - unsupported", version: 2, wantErr: true},
		{name: "version 99 - unsupported", version: 99, wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := validateSchemaVersion(d.version)
			if d.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !d.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestFile_Init(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		file    *File
		wantErr bool
	}{
		{name: "valid pattern", file: &File{Pattern: "*.yaml"}, wantErr: false},
		{name: "empty pattern", file: &File{Pattern: ""}, wantErr: true},
		{name: "invalid glob pattern", file: &File{Pattern: "[invalid"}, wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := d.file.Init()
			if d.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !d.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestIgnoreAction_Init(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		ia      *IgnoreAction
		wantErr bool
	}{
		{name: "valid", ia: &IgnoreAction{Name: "actions/checkout", Ref: "v4"}, wantErr: false},
		{name: "empty name", ia: &IgnoreAction{Name: "", Ref: "v4"}, wantErr: true},
		{name: "empty ref", ia: &IgnoreAction{Name: "actions/checkout"}, wantErr: false},
		{name: "invalid name regex", ia: &IgnoreAction{Name: "[invalid", NameFormat: formatRegexp}, wantErr: true},
		{name: "invalid ref regex", ia: &IgnoreAction{Name: "actions/checkout", Ref: "[invalid", RefFormat: formatRegexp}, wantErr: true},
		{name: "invalid ref glob", ia: &IgnoreAction{Name: "actions/checkout", Ref: "[invalid", RefFormat: formatGlob}, wantErr: true},
		{name: "unknown format", ia: &IgnoreAction{Name: "actions/checkout", NameFormat: "foo"}, wantErr: true},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			err := d.ia.Init()
			if d.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !d.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func Test_getConfigPath(t *testing.T) {
	t.Parallel()
	data := []struct {
		name  string
		paths []string
		exp   string
	}{
		{
			name:  "no config",
			paths: []string{},
			exp:   "",
		},
		{
			name:  "primary",
			paths: []string{".pinlint.yaml"},
			exp:   ".pinlint.yaml",
		},
		{
			name:  "another",
			paths: []string{".github/pinlint.yml"},
			exp:   ".github/pinlint.yml",
		},
		{
			name:  "both primary and others",
			paths: []string{".pinlint.yaml", ".github/pinlint.yaml"},
			exp:   ".pinlint.yaml",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			for _, p := range d.paths {
				if err := afero.WriteFile(fs, p, []byte(""), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			got, err := getConfigPath(fs)
			if err != nil {
				t.Fatal(err)
			}
			if got != d.exp {
				t.Fatalf(`wanted %s, got %s`, d.exp, got)
			}
		})
	}
}
