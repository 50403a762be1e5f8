// internal/benchmark/library.go
package benchmark

import (
	"fmt"
	"time"

	"github.com/pkoukk/tiktoken-go"
)

// encoder is the slice of the reference tokenizer the library runner needs.
type encoder interface {
	Encode(text string, allowedSpecial []string, disallowedSpecial []string) []int
}

// getEncoding resolves an encoding name to a reference encoder. Declared as
// a variable so tests can substitute a stub encoder.
var getEncoding = func(name string) (encoder, error) {
	return tiktoken.GetEncoding(name)
}

// RunLibrary benchmarks the in-process reference tokenizer. Warmup
// invocations run to completion before any timed iteration begins; the token
// count is captured once, from the first timed iteration. Any failure to
// resolve the encoding is fatal.
func RunLibrary(text string, cfg Config) (*Result, error) {
	enc, err := getEncoding(cfg.Encoding)
	if err != nil {
		return nil, fmt.Errorf("get encoding %q: %w", cfg.Encoding, err)
	}

	for i := 0; i < cfg.Warmup; i++ {
		enc.Encode(text, nil, nil)
	}

	times := make([]int64, 0, cfg.Iterations)
	tokens := -1

	for i := 0; i < cfg.Iterations; i++ {
		start := time.Now()
		ids := enc.Encode(text, nil, nil)
		times = append(times, time.Since(start).Nanoseconds())

		if tokens < 0 {
			tokens = len(ids)
		}
	}

	if tokens < 0 {
		tokens = 0
	}

	return &Result{
		Name:       "tiktoken",
		Encoding:   cfg.Encoding,
		InputBytes: int64(len(text)),
		Iterations: cfg.Iterations,
		Tokens:     tokens,
		TimesNS:    times,
	}, nil
}
