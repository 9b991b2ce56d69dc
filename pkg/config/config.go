// Package config reads the configuration file of pinlint.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const currentVersion = 1

type Config struct {
	Version       int             `json:"version,omitempty" jsonschema:"enum=1"`
	Files         []*File         `json:"files,omitempty" jsonschema:"description=Target files. If files are passed via positional command line arguments, this is ignored"`
	IgnoreActions []*IgnoreAction `json:"ignore_actions,omitempty" yaml:"ignore_actions" jsonschema:"description=Actions and reusable workflows that pinlint ignores"`
	Docker        string          `json:"docker,omitempty" jsonschema:"enum=exempt,enum=digest,description=How docker:// references are handled. exempt (default) ignores them and digest requires sha256 digests"`
}

const (
	DockerExempt = "exempt"
	DockerDigest = "digest"
)

func validateSchemaVersion(v int) error {
	switch v {
	case 0, currentVersion:
		return nil
	default:
		return fmt.Errorf("unsupported configuration version: %d", v)
	}
}

// ValidateDocker validates the docker policy.
// An empty policy is allowed and means DockerExempt.
func ValidateDocker(policy string) error {
	switch policy {
	case "", DockerExempt, DockerDigest:
		return nil
	default:
		return errors.New("docker must be exempt or digest")
	}
}

type File struct {
	Pattern string `json:"pattern" jsonschema:"description=A glob pattern of target files. The pattern is relative to the directory of the configuration file"`
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	if _, err := path.Match(f.Pattern, "a"); err != nil {
		return fmt.Errorf("parse pattern as a glob: %w", err)
	}
	return nil
}

type IgnoreAction struct {
	Name       string `json:"name" jsonschema:"description=Action or reusable workflow name such as actions/checkout"`
	Ref        string `json:"ref,omitempty" jsonschema:"description=Ref of the action. If this is empty, any ref is ignored"`
	NameFormat string `json:"name_format,omitempty" yaml:"name_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	RefFormat  string `json:"ref_format,omitempty" yaml:"ref_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	nameRegexp *regexp.Regexp
	refRegexp  *regexp.Regexp
}

func initFormat(value, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(value, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(value)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("format must be fixed_string, glob, or regexp")
	}
}

func (ia *IgnoreAction) initName() error {
	if ia.Name == "" {
		return errors.New("name is required")
	}
	if ia.NameFormat == "" {
		ia.NameFormat = formatFixedString
	}
	var err error
	ia.nameRegexp, err = initFormat(ia.Name, ia.NameFormat)
	if err != nil {
		return fmt.Errorf("initialize name: %w", err)
	}
	return nil
}

func (ia *IgnoreAction) initRef() error {
	if ia.Ref == "" {
		return nil
	}
	if ia.RefFormat == "" {
		ia.RefFormat = formatFixedString
	}
	var err error
	ia.refRegexp, err = initFormat(ia.Ref, ia.RefFormat)
	if err != nil {
		return fmt.Errorf("initialize ref: %w", err)
	}
	return nil
}

func (ia *IgnoreAction) Init() error {
	if err := ia.initName(); err != nil {
		return err
	}
	return ia.initRef()
}

func match(value, pattern, format string, r *regexp.Regexp) (bool, error) {
	switch format {
	case formatFixedString:
		return value == pattern, nil
	case formatGlob:
		f, err := path.Match(pattern, value)
		if err != nil {
			return false, fmt.Errorf("match as a glob: %w", err)
		}
		return f, nil
	case formatRegexp:
		return r.MatchString(value), nil
	default:
		return false, errors.New("unexpected format: " + format)
	}
}

// Match returns true if the action should be ignored.
// Init must be called before Match.
func (ia *IgnoreAction) Match(name, ref string) (bool, error) {
	f, err := match(name, ia.Name, ia.NameFormat, ia.nameRegexp)
	if err != nil {
		return false, fmt.Errorf("match name: %w", err)
	}
	if !f {
		return false, nil
	}
	if ia.Ref == "" {
		return true, nil
	}
	f, err = match(ref, ia.Ref, ia.RefFormat, ia.refRegexp)
	if err != nil {
		return false, fmt.Errorf("match ref: %w", err)
	}
	return f, nil
}

var configPaths = []string{".pinlint.yaml", ".github/pinlint.yaml", ".pinlint.yml", ".github/pinlint.yml"}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, p := range configPaths {
		f, err := afero.Exists(fs, p)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", p, err)
		}
		if f {
			return p, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise, it looks for the configuration file from default paths.
// If no configuration file is found, it returns an empty string.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read reads and validates the configuration file.
// If configFilePath is empty, cfg isn't changed.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	return cfg.Init()
}

func (cfg *Config) Init() error {
	if err := validateSchemaVersion(cfg.Version); err != nil {
		return err
	}
	if err := ValidateDocker(cfg.Docker); err != nil {
		return err
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	for _, ia := range cfg.IgnoreActions {
		if err := ia.Init(); err != nil {
			return fmt.Errorf("initialize ignore_action: %w", err)
		}
	}
	return nil
}

// Ignore returns true if the action matches any ignore_actions.
func (cfg *Config) Ignore(name, ref string) (bool, error) {
	for _, ia := range cfg.IgnoreActions {
		f, err := ia.Match(name, ref)
		if err != nil {
			return false, err
		}
		if f {
			return true, nil
		}
	}
	return false, nil
}
