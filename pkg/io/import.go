package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

// ReadJSON decodes targets from a JSON document produced by [WriteJSON].
//
// The returned targets are unfinalized but already split (inputs and
// dependencies separated), so they can be combined with targets from
// other sources and passed to target.Finalize. ReadJSON does not
// validate references; finalization reports unknown dependencies,
// duplicates, and cycles. It does not close r.
func ReadJSON(r io.Reader) ([]*target.Target, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode targets")
	}

	targets := make([]*target.Target, len(data.Targets))
	for i, t := range data.Targets {
		targets[i] = &target.Target{
			Name:     t.Name,
			Outputs:  t.Outputs,
			Deps:     target.SplitDeps(t.Inputs, t.Dependencies),
			Commands: t.Commands,
		}
	}
	return targets, nil
}

// ImportJSON reads a JSON file at path and returns the decoded targets.
// See [ReadJSON] for the format and validation behavior.
func ImportJSON(path string) ([]*target.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "targets file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
