// Package integration provides CLI integration tests for seqmine.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// seqmineBin is the path to the built seqmine binary.
	seqmineBin string
	// buildErr captures any build error.
	buildErr error
)

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// result holds the outcome of one CLI invocation.
type result struct {
	stdout   string
	stderr   string
	exitCode int
}

// runSeqmine runs the built binary in dir with the given arguments and
// extra environment entries.
func runSeqmine(t *testing.T, dir string, env []string, args ...string) result {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("seqmine binary not built: %v", buildErr)
	}

	cmd := exec.Command(seqmineBin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("running seqmine %v: %v", args, err)
	}

	return result{stdout: stdout.String(), stderr: stderr.String(), exitCode: exitCode}
}

// writeDataset writes a dataset file into dir and returns its path.
func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing dataset %s: %v", name, err)
	}
	return path
}

// supermarketJSON is the shared basket fixture used across tests.
const supermarketJSON = `[
  ["bread", "milk"],
  ["bread", "diaper", "beer", "eggs"],
  ["milk", "diaper", "beer", "coke"],
  ["bread", "milk", "diaper", "beer"],
  ["bread", "milk", "diaper", "coke"]
]`
