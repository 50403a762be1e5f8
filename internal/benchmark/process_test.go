package benchmark

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestModelForEncoding(t *testing.T) {
	cases := map[string]string{
		"cl100k_base": "gpt-4",
		"o200k_base":  "gpt-4o",
		"p50k_base":   "gpt-4o",
		"":            "gpt-4o",
	}
	for encoding, expected := range cases {
		if got := ModelForEncoding(encoding); got != expected {
			t.Fatalf("ModelForEncoding(%q) = %q, want %q", encoding, got, expected)
		}
	}
}

func TestRunProcessMissingBinary(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	missing := filepath.Join(t.TempDir(), "no-such-binary")
	result, err := RunProcess("text", Config{Encoding: "o200k_base", Iterations: 1}, missing)
	if err != nil {
		t.Fatalf("missing binary must be a skip, got error: %v", err)
	}
	if result != nil {
		t.Fatalf("missing binary must yield no result, got %+v", result)
	}

	assertNoTempFiles(t, tmpDir)
}

func TestRunProcessStubbed(t *testing.T) {
	binary := writeFakeBinary(t)

	var invocations [][]string
	prev := runCommand
	runCommand = func(binary string, args []string) ([]byte, error) {
		invocations = append(invocations, args)
		return []byte("42 tokens\n"), nil
	}
	t.Cleanup(func() { runCommand = prev })

	result, err := RunProcess("some corpus text", Config{Encoding: "cl100k_base", Iterations: 5, Warmup: 2}, binary)
	if err != nil {
		t.Fatalf("RunProcess: %v", err)
	}

	if len(invocations) != 7 {
		t.Fatalf("invocations = %d, want 7 (2 warmup + 5 timed)", len(invocations))
	}
	for _, args := range invocations {
		if args[0] != "count" {
			t.Fatalf("unexpected subcommand: %v", args)
		}
		if args[2] != "--model" || args[3] != "gpt-4" {
			t.Fatalf("unexpected model args: %v", args)
		}
	}

	if len(result.TimesNS) != 5 {
		t.Fatalf("len(TimesNS) = %d, want 5", len(result.TimesNS))
	}
	if result.Tokens != 42 {
		t.Fatalf("tokens = %d, want 42", result.Tokens)
	}
	if result.Name != "candidate" {
		t.Fatalf("name = %q", result.Name)
	}
}

func TestRunProcessUnparseableOutput(t *testing.T) {
	binary := writeFakeBinary(t)

	prev := runCommand
	runCommand = func(binary string, args []string) ([]byte, error) {
		return []byte("not-a-number\n"), nil
	}
	t.Cleanup(func() { runCommand = prev })

	result, err := RunProcess("text", Config{Encoding: "o200k_base", Iterations: 2}, binary)
	if err != nil {
		t.Fatalf("unparseable output must degrade, got error: %v", err)
	}
	if result.Tokens != 0 {
		t.Fatalf("tokens = %d, want 0", result.Tokens)
	}
	if len(result.TimesNS) != 2 {
		t.Fatalf("len(TimesNS) = %d, want 2", len(result.TimesNS))
	}
}

func TestRunProcessFailureCleansTempFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script binaries are not runnable on windows")
	}

	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	dir := t.TempDir()
	binary := filepath.Join(dir, "failing-candidate")
	script := "#!/bin/sh\nexit 3\n"
	if err := os.WriteFile(binary, []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	_, err := RunProcess("text", Config{Encoding: "o200k_base", Iterations: 1, Warmup: 1}, binary)
	if err == nil {
		t.Fatalf("expected fatal error for non-zero exit status")
	}
	if !strings.Contains(err.Error(), "warmup") {
		t.Fatalf("failure should come from the warmup phase: %v", err)
	}

	assertNoTempFiles(t, tmpDir)
}

func TestRunProcessTimedFailureIsFatal(t *testing.T) {
	binary := writeFakeBinary(t)

	calls := 0
	prev := runCommand
	runCommand = func(binary string, args []string) ([]byte, error) {
		calls++
		if calls > 1 {
			return nil, fmt.Errorf("exit status 2")
		}
		return []byte("42\n"), nil
	}
	t.Cleanup(func() { runCommand = prev })

	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	_, err := RunProcess("text", Config{Encoding: "o200k_base", Iterations: 3, Warmup: 0}, binary)
	if err == nil {
		t.Fatalf("expected fatal error for failing timed invocation")
	}

	assertNoTempFiles(t, tmpDir)
}

// writeFakeBinary creates a file that passes the os.Stat precondition. The
// subprocess boundary itself is stubbed via runCommand in these tests.
func writeFakeBinary(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidate")
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho 42\n"), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "tokbench-corpus-") {
			t.Fatalf("temp corpus file left behind: %s", entry.Name())
		}
	}
}
