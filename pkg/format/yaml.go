package format

import (
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// YAML parses mortar's native build files: a mapping from target name
// to target body. Targets come back in document order, which decides
// the default target.
type YAML struct{}

func (y *YAML) Name() string { return "yaml" }

func (y *YAML) Supports(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

func (y *YAML) Parse(path string) ([]*target.Target, error) {
	data, err := readBuildFile(path)
	if err != nil {
		return nil, err
	}

	// Decode into a node tree instead of a map to keep document order.
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "parse %s", path)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrCodeParse,
			"%s:%d: build file must be a mapping of target names", path, root.Line)
	}

	targets := make([]*target.Target, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		var b body
		if err := val.Decode(&b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "%s: target %q", path, key.Value)
		}
		t, err := b.toTarget(key.Value)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
