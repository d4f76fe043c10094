package console

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meikuraledutech/decision"
)

func fixture(name string) string {
	return filepath.Join("..", "testdata", name)
}

func TestRun_MissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run(nil, &stdout, &stderr)
	if code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	if !strings.Contains(stdout.String(), "Usage:") || !strings.Contains(stdout.String(), "Example:") {
		t.Errorf("expected usage and example, got %q", stdout.String())
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"-nope", "x.json"}, &stdout, &stderr); code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	if stderr.Len() == 0 {
		t.Error("expected flag error on stderr")
	}
	if strings.Contains(stdout.String(), "flag provided but not defined") {
		t.Errorf("flag package output leaked to stdout:\n%s", stdout.String())
	}
}

func TestRun_ValidDocument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := fixture("minimal.json")
	code := Run([]string{path}, &stdout, &stderr)
	if code != ExitValid {
		t.Fatalf("expected exit %d, got %d:\n%s", ExitValid, code, stdout.String())
	}
	out := stdout.String()
	for _, want := range []string{
		"Validating GoRules JSON: " + path,
		"✅ Valid contentType",
		"✅ Found 3 nodes",
		"   ├─ Decision table 'table' has 0 rules",
		"✅ Found 2 edges",
		"VALIDATION PASSED",
		"3. Select: " + path,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_InvalidDocument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{fixture("broken.json")}, &stdout, &stderr)
	if code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	out := stdout.String()
	for _, want := range []string{
		"VALIDATION FAILED",
		"13 error(s) found:",
		"  ❌ Duplicate node id: 'input'",
		"  ⚠️  Warning: No outputNode found (recommended to have at least one)",
		"How to fix:",
		"See: https://gorules.io/docs for detailed help",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_FileNotFound(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing.json")
	if code := Run([]string{path}, &stdout, &stderr); code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	if !strings.Contains(stdout.String(), "1 error(s) found:") ||
		!strings.Contains(stdout.String(), "❌ File not found: "+path) {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestRun_MalformedJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{fixture("trailing_comma.json")}, &stdout, &stderr); code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	if !strings.Contains(stdout.String(), "1 error(s) found:") ||
		!strings.Contains(stdout.String(), "Invalid JSON syntax") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}

func TestRun_JSONOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-json", fixture("broken.json")}, &stdout, &stderr)
	if code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	var r decision.Report
	if err := json.Unmarshal(stdout.Bytes(), &r); err != nil {
		t.Fatalf("output is not a report: %v\n%s", err, stdout.String())
	}
	if r.Valid || len(r.Diagnostics) != 13 {
		t.Errorf("unexpected report: valid=%v diagnostics=%d", r.Valid, len(r.Diagnostics))
	}
}

func TestRun_QuietNarration(t *testing.T) {
	var stdout, stderr bytes.Buffer
	Run([]string{"-log-level", "disabled", fixture("minimal.json")}, &stdout, &stderr)
	if strings.Contains(stdout.String(), "Found 3 nodes") {
		t.Errorf("expected narration to be suppressed:\n%s", stdout.String())
	}
}

func TestRun_Directory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "x.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := Run([]string{dir}, &stdout, &stderr); code != ExitInvalid {
		t.Fatalf("expected exit %d, got %d", ExitInvalid, code)
	}
	if !strings.Contains(stdout.String(), "Error reading file") {
		t.Errorf("unexpected output:\n%s", stdout.String())
	}
}
