package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwiater/tokbench/internal/benchmark"
)

func sampleResult(name string, tokens int) *benchmark.Result {
	return &benchmark.Result{
		Name:       name,
		Encoding:   "o200k_base",
		InputBytes: 1_000_000,
		Iterations: 3,
		Tokens:     tokens,
		TimesNS:    []int64{2_000_000, 1_000_000, 3_000_000},
	}
}

func TestTable(t *testing.T) {
	out := Table([]*benchmark.Result{sampleResult("tiktoken", 42), sampleResult("candidate", 42)})

	for _, want := range []string{"tiktoken", "candidate", "MB/s", "Ratio"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 8 {
		t.Fatalf("table has %d lines, want 8", len(lines))
	}
}

func TestTableEmpty(t *testing.T) {
	if out := Table(nil); !strings.Contains(out, "No results") {
		t.Fatalf("unexpected empty-table output: %q", out)
	}
}

func TestSummaryParity(t *testing.T) {
	ref := sampleResult("tiktoken", 42)
	cand := sampleResult("candidate", 42)

	out := Summary(benchmark.Compare(ref, cand))
	if !strings.Contains(out, "Token count matches: 42") {
		t.Fatalf("expected parity line:\n%s", out)
	}
	if !strings.Contains(out, "comparable") {
		t.Fatalf("expected comparable verdict:\n%s", out)
	}

	cand.Tokens = 40
	out = Summary(benchmark.Compare(ref, cand))
	if !strings.Contains(out, "differs by 2") {
		t.Fatalf("expected mismatch line:\n%s", out)
	}
	if !strings.Contains(out, "(42 vs 40)") {
		t.Fatalf("expected both counts reported:\n%s", out)
	}
}

func TestJSONShape(t *testing.T) {
	meta := Meta{InputSize: "1MB", InputBytes: 1_000_000, Encoding: "o200k_base", Iterations: 3}
	data, err := JSON(meta, []*benchmark.Result{sampleResult("tiktoken", 42)})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded struct {
		Meta struct {
			InputSize  string `json:"input_size"`
			InputBytes int64  `json:"input_bytes"`
			Encoding   string `json:"encoding"`
			Iterations int    `json:"iterations"`
		} `json:"meta"`
		Results []struct {
			Name           string  `json:"name"`
			Tokens         int     `json:"tokens"`
			ThroughputMBPS float64 `json:"throughput_mbps"`
			LatencyNS      struct {
				Min  int64 `json:"min"`
				P50  int64 `json:"p50"`
				P95  int64 `json:"p95"`
				P99  int64 `json:"p99"`
				Max  int64 `json:"max"`
				Mean int64 `json:"mean"`
			} `json:"latency_ns"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if decoded.Meta.InputSize != "1MB" || decoded.Meta.InputBytes != 1_000_000 {
		t.Fatalf("meta mismatch: %+v", decoded.Meta)
	}
	if len(decoded.Results) != 1 {
		t.Fatalf("results length = %d", len(decoded.Results))
	}

	r := decoded.Results[0]
	if r.Name != "tiktoken" || r.Tokens != 42 {
		t.Fatalf("result mismatch: %+v", r)
	}
	// 1MB over a 2ms mean is 500 MB/s.
	if r.ThroughputMBPS != 500.0 {
		t.Fatalf("throughput = %v, want 500", r.ThroughputMBPS)
	}
	if r.LatencyNS.Min != 1_000_000 || r.LatencyNS.Max != 3_000_000 {
		t.Fatalf("latency bounds: %+v", r.LatencyNS)
	}
	if r.LatencyNS.P50 != 2_000_000 || r.LatencyNS.Mean != 2_000_000 {
		t.Fatalf("latency p50/mean: %+v", r.LatencyNS)
	}
}
