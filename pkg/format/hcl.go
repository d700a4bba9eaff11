package format

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// HCL parses build files written as labeled target blocks:
//
//	target "app" {
//	  commands = ["cc -o app main.c"]
//	  deps     = ["main.c", "lib"]
//	  outputs  = ["app-${os}"]
//	}
//
// Expressions can reference the os and arch variables, so build files
// can spell platform-dependent file names without a wrapper script.
type HCL struct{}

// hclFile is the decoding schema of a build file.
type hclFile struct {
	Targets []hclTarget `hcl:"target,block"`
}

type hclTarget struct {
	Name     string   `hcl:"name,label"`
	Commands []string `hcl:"commands,optional"`
	Deps     []string `hcl:"deps,optional"`
	Inputs   []string `hcl:"inputs,optional"`
	Outputs  []string `hcl:"outputs,optional"`
}

func (h *HCL) Name() string { return "hcl" }

func (h *HCL) Supports(filename string) bool {
	return strings.ToLower(filepath.Ext(filename)) == ".hcl"
}

func (h *HCL) Parse(path string) ([]*target.Target, error) {
	data, err := readBuildFile(path)
	if err != nil {
		return nil, err
	}

	file, diags := hclparse.NewParser().ParseHCL(data, path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeParse, diags, "parse %s", path)
	}

	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, h.evalContext(), &root); diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeParse, diags, "parse %s", path)
	}

	targets := make([]*target.Target, 0, len(root.Targets))
	for _, block := range root.Targets {
		if block.Deps != nil && block.Inputs != nil {
			return nil, errors.New(errors.ErrCodeParse,
				"target %q: deps already mixes files and targets, drop inputs", block.Name)
		}
		t := &target.Target{Name: block.Name, Outputs: block.Outputs, Commands: block.Commands}
		if block.Deps != nil {
			t.Deps = target.MixedDeps(block.Deps...)
		} else {
			t.Deps = target.SplitDeps(block.Inputs, nil)
		}
		targets = append(targets, t)
	}
	return targets, nil
}

// evalContext exposes the variables build file expressions may use.
func (h *HCL) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"os":   cty.StringVal(runtime.GOOS),
			"arch": cty.StringVal(runtime.GOARCH),
		},
	}
}
