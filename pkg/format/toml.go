package format

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// TOML parses build files written as one table per target:
//
//	[app]
//	cmds = ["cc -o app main.c"]
//	deps = ["main.c", "lib"]
//	outs = ["app"]
type TOML struct{}

func (f *TOML) Name() string { return "toml" }

func (f *TOML) Supports(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".toml"
}

func (f *TOML) Parse(path string) ([]*target.Target, error) {
	data, err := readBuildFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]body
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}

	// md.Keys() walks the document in source order; the map alone would
	// lose it and with it the default target.
	targets := make([]*target.Target, 0, len(raw))
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		b, ok := raw[name]
		if !ok {
			continue
		}
		t, err := b.toTarget(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
