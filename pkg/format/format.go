package format

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// Format reads build files of one on-disk syntax.
type Format interface {
	// Name returns the format identifier (e.g. "yaml", "makefile").
	Name() string
	// Supports reports whether this format handles the given filename.
	Supports(filename string) bool
	// Parse reads the build file at path and returns its targets in
	// declaration order, unfinalized.
	Parse(path string) ([]*target.Target, error)
}

// Formats returns the built-in formats in detection order.
func Formats() []Format {
	return []Format{&YAML{}, &TOML{}, &HCL{}, &JSON{}, &Makefile{}}
}

// Detect finds a format that supports the given file path.
// Returns ErrCodeUnknownFormat if none matches.
func Detect(path string, formats ...Format) (Format, error) {
	name := filepath.Base(path)
	for _, f := range formats {
		if f.Supports(name) {
			return f, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnknownFormat, "unsupported build file: %s", name)
}

// DefaultFiles lists the file names Discover probes, in precedence
// order.
var DefaultFiles = []string{
	"mortar.yaml",
	"mortar.yml",
	"mortar.toml",
	"mortar.hcl",
	"mortar.json",
	"Makefile",
	"makefile",
}

// Discover returns the path of the first well-known build file present
// in dir. Returns ErrCodeFileNotFound when the directory has none.
func Discover(dir string) (string, error) {
	for _, name := range DefaultFiles {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFileNotFound,
		"no build file in %s (looked for %s)", dir, strings.Join(DefaultFiles, ", "))
}

// ParseFile detects the format of path among the built-in formats and
// parses it.
func ParseFile(path string) ([]*target.Target, error) {
	f, err := Detect(path, Formats()...)
	if err != nil {
		return nil, err
	}
	return f.Parse(path)
}

// readBuildFile loads a build file, mapping a missing file to
// ErrCodeFileNotFound so callers can tell it apart from syntax errors.
func readBuildFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "build file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read build file %s", path)
	}
	return data, nil
}

// body is the decoded form of one target, shared by the YAML and TOML
// front ends. Short and long key spellings are aliases; using both in
// one target is an error.
type body struct {
	Cmds         []string `yaml:"cmds" toml:"cmds"`
	Commands     []string `yaml:"commands" toml:"commands"`
	Deps         []string `yaml:"deps" toml:"deps"`
	Dependencies []string `yaml:"dependencies" toml:"dependencies"`
	Ins          []string `yaml:"ins" toml:"ins"`
	Inputs       []string `yaml:"inputs" toml:"inputs"`
	Outs         []string `yaml:"outs" toml:"outs"`
	Outputs      []string `yaml:"outputs" toml:"outputs"`
}

func (b body) toTarget(name string) (*target.Target, error) {
	commands, err := oneOf(name, "cmds", b.Cmds, "commands", b.Commands)
	if err != nil {
		return nil, err
	}
	deps, err := oneOf(name, "deps", b.Deps, "dependencies", b.Dependencies)
	if err != nil {
		return nil, err
	}
	inputs, err := oneOf(name, "ins", b.Ins, "inputs", b.Inputs)
	if err != nil {
		return nil, err
	}
	outputs, err := oneOf(name, "outs", b.Outs, "outputs", b.Outputs)
	if err != nil {
		return nil, err
	}

	if deps != nil && inputs != nil {
		return nil, errors.New(errors.ErrCodeParse,
			"target %q: deps already mixes files and targets, drop ins/inputs", name)
	}

	t := &target.Target{Name: name, Outputs: outputs, Commands: commands}
	if deps != nil {
		t.Deps = target.MixedDeps(deps...)
	} else {
		t.Deps = target.SplitDeps(inputs, nil)
	}
	return t, nil
}

func oneOf(tgt, shortKey string, short []string, longKey string, long []string) ([]string, error) {
	if short != nil && long != nil {
		return nil, errors.New(errors.ErrCodeParse,
			"target %q: %s and %s are aliases, use only one", tgt, shortKey, longKey)
	}
	if short != nil {
		return short, nil
	}
	return long, nil
}
