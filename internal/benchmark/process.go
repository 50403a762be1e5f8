// internal/benchmark/process.go
package benchmark

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mwiater/tokbench/internal/logging"
)

// encodingModels maps encoding names to the model identifier the candidate
// binary expects. Unknown encodings fall back to defaultModel.
var encodingModels = map[string]string{
	"cl100k_base": "gpt-4",
	"o200k_base":  "gpt-4o",
}

const defaultModel = "gpt-4o"

// ModelForEncoding resolves the --model argument passed to the candidate
// binary for a given encoding name.
func ModelForEncoding(encoding string) string {
	if model, ok := encodingModels[encoding]; ok {
		return model
	}
	return defaultModel
}

// RunProcess benchmarks the candidate tokenizer as an opaque external
// program. Each invocation spawns a fresh subprocess, so process-startup
// cost is part of what is measured. The corpus is written to a temporary
// file that is removed on every exit path.
//
// A missing binary is a recoverable skip: RunProcess logs a warning and
// returns (nil, nil). A non-zero exit status from any invocation, warmup or
// timed, is fatal.
func RunProcess(text string, cfg Config, binaryPath string) (*Result, error) {
	if _, err := os.Stat(binaryPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Warnf("candidate binary not found at %q, skipping", binaryPath)
			return nil, nil
		}
		return nil, fmt.Errorf("candidate binary %q not accessible: %w", binaryPath, err)
	}

	tmp, err := os.CreateTemp("", "tokbench-corpus-*.txt")
	if err != nil {
		return nil, fmt.Errorf("create corpus temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write corpus temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("close corpus temp file: %w", err)
	}

	args := []string{"count", tmpPath, "--model", ModelForEncoding(cfg.Encoding)}

	for i := 0; i < cfg.Warmup; i++ {
		if _, err := runCommand(binaryPath, args); err != nil {
			return nil, fmt.Errorf("candidate warmup invocation: %w", err)
		}
	}

	times := make([]int64, 0, cfg.Iterations)
	tokens := -1

	for i := 0; i < cfg.Iterations; i++ {
		start := time.Now()
		stdout, err := runCommand(binaryPath, args)
		times = append(times, time.Since(start).Nanoseconds())
		if err != nil {
			return nil, fmt.Errorf("candidate invocation %d: %w", i+1, err)
		}

		if tokens < 0 {
			tokens = parseTokenCount(stdout)
		}
	}

	if tokens < 0 {
		tokens = 0
	}

	return &Result{
		Name:       "candidate",
		Encoding:   cfg.Encoding,
		InputBytes: int64(len(text)),
		Iterations: cfg.Iterations,
		Tokens:     tokens,
		TimesNS:    times,
	}, nil
}

// runCommand spawns the candidate binary and blocks until it exits,
// returning captured stdout. Declared as a variable so tests can stub the
// subprocess boundary.
var runCommand = func(binary string, args []string) ([]byte, error) {
	cmd := exec.Command(binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("%s: %w (%s)", binary, err, msg)
		}
		return nil, fmt.Errorf("%s: %w", binary, err)
	}
	return stdout.Bytes(), nil
}

// parseTokenCount reads the leading whitespace-delimited field of the
// candidate's stdout as an integer token count. Output the harness cannot
// parse degrades to zero; the comparison will then surface a token-count
// mismatch instead of the run aborting.
func parseTokenCount(stdout []byte) int {
	fields := strings.Fields(string(stdout))
	if len(fields) == 0 {
		logging.Warnf("candidate produced no token count, defaulting to 0")
		return 0
	}
	count, err := strconv.Atoi(fields[0])
	if err != nil {
		logging.Warnf("candidate output %q is not a token count, defaulting to 0", fields[0])
		return 0
	}
	return count
}
