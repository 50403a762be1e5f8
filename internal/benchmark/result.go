// internal/benchmark/result.go
// Package benchmark runs timed tokenizer invocations and compares the
// resulting latency and token-count measurements.
package benchmark

import "sort"

// Config holds the knobs shared by both invocation runners.
type Config struct {
	Encoding   string
	Iterations int
	Warmup     int
}

// Result captures one benchmark run of a single tokenizer implementation.
// TimesNS holds one elapsed-time sample per timed iteration, in execution
// order. All summary statistics are derived on demand from TimesNS and
// InputBytes; nothing is cached.
type Result struct {
	Name       string  `json:"name"`
	Encoding   string  `json:"encoding"`
	InputBytes int64   `json:"input_bytes"`
	Iterations int     `json:"iterations"`
	Tokens     int     `json:"tokens"`
	TimesNS    []int64 `json:"times_ns"`
}

// MinNS returns the smallest recorded sample, or 0 when no samples exist.
func (r *Result) MinNS() int64 {
	if len(r.TimesNS) == 0 {
		return 0
	}
	min := r.TimesNS[0]
	for _, t := range r.TimesNS[1:] {
		if t < min {
			min = t
		}
	}
	return min
}

// MaxNS returns the largest recorded sample, or 0 when no samples exist.
func (r *Result) MaxNS() int64 {
	if len(r.TimesNS) == 0 {
		return 0
	}
	max := r.TimesNS[0]
	for _, t := range r.TimesNS[1:] {
		if t > max {
			max = t
		}
	}
	return max
}

// MeanNS returns the arithmetic mean of the recorded samples.
func (r *Result) MeanNS() float64 {
	if len(r.TimesNS) == 0 {
		return 0
	}
	var sum int64
	for _, t := range r.TimesNS {
		sum += t
	}
	return float64(sum) / float64(len(r.TimesNS))
}

// PercentileNS returns the nearest-rank percentile of the recorded samples:
// the samples are sorted ascending and the value at index floor(n*p),
// clamped to n-1, is returned. No interpolation is performed.
func (r *Result) PercentileNS(p float64) int64 {
	n := len(r.TimesNS)
	if n == 0 {
		return 0
	}
	sorted := make([]int64, n)
	copy(sorted, r.TimesNS)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	idx := int(float64(n) * p)
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}

// P50NS returns the median sample.
func (r *Result) P50NS() int64 { return r.PercentileNS(0.50) }

// P95NS returns the 95th-percentile sample.
func (r *Result) P95NS() int64 { return r.PercentileNS(0.95) }

// P99NS returns the 99th-percentile sample.
func (r *Result) P99NS() int64 { return r.PercentileNS(0.99) }

// ThroughputMBPS returns processed megabytes per second, derived from the
// mean latency and the measured input size. A zero mean yields 0 rather
// than dividing by zero.
func (r *Result) ThroughputMBPS() float64 {
	mean := r.MeanNS()
	if mean == 0 {
		return 0
	}
	bytesPerSec := float64(r.InputBytes) / (mean / 1e9)
	return bytesPerSec / 1e6
}
