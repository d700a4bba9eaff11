package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/target"
)

type document struct {
	Targets []targetJSON `json:"targets"`
}

type targetJSON struct {
	Name         string   `json:"name"`
	Outputs      []string `json:"outputs,omitempty"`
	Inputs       []string `json:"inputs,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Commands     []string `json:"commands,omitempty"`
}

// WriteJSON encodes a finalized target map as JSON and writes it to w.
// Targets are emitted sorted by name, so output is deterministic and
// can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(m target.Map, w io.Writer) error {
	names := m.Names()
	out := document{Targets: make([]targetJSON, len(names))}
	for i, name := range names {
		t := m[name]
		out.Targets[i] = targetJSON{
			Name:         t.Name,
			Outputs:      t.Outputs,
			Inputs:       t.Inputs(),
			Dependencies: t.Dependencies(),
			Commands:     t.Commands,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode targets")
	}
	return nil
}

// ExportJSON writes a target map to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(m target.Map, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(m, f)
}
