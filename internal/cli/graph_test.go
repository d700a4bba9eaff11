package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunGraphDOT(t *testing.T) {
	dir := t.TempDir()
	path := writeBuildFile(t, dir, "mortar.yaml", testBuildFile)
	out := filepath.Join(dir, "graph.dot")

	if err := testCLI().runGraph(&buildFlags{file: path}, "dot", out, false); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	for _, want := range []string{"digraph targets {", `"app" -> "lib"`} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "main.c") {
		t.Error("input files present without --inputs")
	}
}

func TestRunGraphDOTWithInputs(t *testing.T) {
	dir := t.TempDir()
	path := writeBuildFile(t, dir, "mortar.yaml", testBuildFile)
	out := filepath.Join(dir, "graph.dot")

	if err := testCLI().runGraph(&buildFlags{file: path}, "dot", out, true); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "main.c") {
		t.Errorf("DOT output missing input file:\n%s", data)
	}
}

func TestRunGraphJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeBuildFile(t, dir, "mortar.yaml", testBuildFile)
	out := filepath.Join(dir, "targets.json")

	if err := testCLI().runGraph(&buildFlags{file: path}, "json", out, false); err != nil {
		t.Fatalf("runGraph() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), `"name": "app"`) {
		t.Errorf("JSON output missing target:\n%s", data)
	}
}

func TestRunGraphUnknownFormat(t *testing.T) {
	path := writeBuildFile(t, t.TempDir(), "mortar.yaml", testBuildFile)

	err := testCLI().runGraph(&buildFlags{file: path}, "svg", "", false)
	if err == nil {
		t.Fatal("runGraph() error = nil, want unknown format")
	}
	if !strings.Contains(err.Error(), "unknown graph format") {
		t.Errorf("error = %v, want unknown graph format", err)
	}
}
