package format

import (
	"path/filepath"
	"strings"

	pkgio "github.com/matzehuels/mortar/pkg/io"
	"github.com/matzehuels/mortar/pkg/target"
)

// JSON reads the interchange documents written by `mortar graph
// --format json`, so an exported graph is itself a valid build file.
// The document shape is defined in pkg/io.
type JSON struct{}

func (j *JSON) Name() string { return "json" }

func (j *JSON) Supports(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".json"
}

func (j *JSON) Parse(path string) ([]*target.Target, error) {
	return pkgio.ImportJSON(path)
}
