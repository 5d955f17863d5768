package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/datacore/crew_stats/internal/config"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if got, ok := FindRoot(nested); ok || got != nested {
		t.Fatalf("without a config the start dir is the root, got %q ok=%v", got, ok)
	}

	if err := os.WriteFile(filepath.Join(root, config.FileName), nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got, ok := FindRoot(nested); !ok || got != root {
		t.Fatalf("expected %q, got %q ok=%v", root, got, ok)
	}
}

func TestAsExitError_Wrapped(t *testing.T) {
	err := fmt.Errorf("precalc: %w", ExitWithError(exitUsage, errors.New("bad")))
	ee, ok := asExitError(err)
	if !ok || ee.Code != exitUsage {
		t.Fatalf("expected wrapped exit error with code %d, got %#v ok=%v", exitUsage, ee, ok)
	}
	if _, ok := asExitError(errors.New("plain")); ok {
		t.Fatalf("plain errors are not exit errors")
	}
}

func TestRun_Help(t *testing.T) {
	if code := RunWithOptions(Options{Args: []string{"--help"}, Dir: t.TempDir(), Stdout: io.Discard, Stderr: io.Discard}); code != 0 {
		t.Fatalf("expected exit 0 for --help, got %d", code)
	}
}
