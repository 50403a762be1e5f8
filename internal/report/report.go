// internal/report/report.go
// Package report renders benchmark results as a terminal table or as
// structured JSON.
package report

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/tokbench/internal/benchmark"
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	verdictStyle = lipgloss.NewStyle().Bold(true)
)

// Table renders one row per result: implementation name, throughput,
// p50/p95/p99 latency, and throughput ratio relative to the first result.
func Table(results []*benchmark.Result) string {
	if len(results) == 0 {
		return "No results to display"
	}

	baseline := results[0].ThroughputMBPS()

	lines := []string{
		"╔════════════════════════════════════════════════════════════════════════════╗",
		"║" + headerStyle.Render("                        Benchmark Comparison                                ") + "║",
		"╠════════════════════════════════════════════════════════════════════════════╣",
		"║ Implementation │ Throughput  │   p50    │   p95    │   p99    │   Ratio    ║",
		"╟────────────────┼─────────────┼──────────┼──────────┼──────────┼────────────╢",
	}

	for _, r := range results {
		ratio := 0.0
		if baseline > 0 {
			ratio = r.ThroughputMBPS() / baseline
		}
		lines = append(lines, fmt.Sprintf(
			"║ %s │ %7.2f MB/s│ %6.2fms │ %6.2fms │ %6.2fms │ %7.2fx   ║",
			nameStyle.Render(fmt.Sprintf("%-14s", r.Name)),
			r.ThroughputMBPS(),
			float64(r.P50NS())/1e6,
			float64(r.P95NS())/1e6,
			float64(r.P99NS())/1e6,
			ratio,
		))
	}

	lines = append(lines, "╚════════════════════════════════════════════════════════════════════════════╝")

	return strings.Join(lines, "\n")
}

// Summary renders the comparison block: both throughputs and token counts,
// the token-parity line, and the verdict.
func Summary(cmp benchmark.Comparison) string {
	ref := cmp.Reference
	cand := cmp.Candidate

	lines := []string{
		"",
		"── Comparison Summary ──",
		"",
		fmt.Sprintf("  %-10s %8.2f MB/s (%d tokens)", ref.Name+":", ref.ThroughputMBPS(), ref.Tokens),
		fmt.Sprintf("  %-10s %8.2f MB/s (%d tokens)", cand.Name+":", cand.ThroughputMBPS(), cand.Tokens),
		"",
	}

	if cmp.TokensMatch {
		lines = append(lines, matchStyle.Render(fmt.Sprintf("  ✓ Token count matches: %d", ref.Tokens)))
	} else {
		lines = append(lines, warnStyle.Render(fmt.Sprintf(
			"  ⚠ Token count differs by %d (%d vs %d)", cmp.TokenDiff, ref.Tokens, cand.Tokens)))
	}
	lines = append(lines, "")

	switch cmp.Verdict {
	case benchmark.VerdictFaster:
		lines = append(lines, verdictStyle.Render(fmt.Sprintf(
			"  ✓ %s is %.2fx FASTER than %s", cand.Name, cmp.Ratio, ref.Name)))
	case benchmark.VerdictSlower:
		lines = append(lines, verdictStyle.Render(fmt.Sprintf(
			"  ⚠ %s is %.2fx SLOWER than %s", cand.Name, 1/cmp.Ratio, ref.Name)))
	case benchmark.VerdictIndeterminate:
		lines = append(lines, verdictStyle.Render(
			"  ? Verdict indeterminate (zero throughput measured)"))
	default:
		lines = append(lines, verdictStyle.Render(fmt.Sprintf(
			"  ≈ Performance is comparable (ratio: %.2fx)", cmp.Ratio)))
	}

	return strings.Join(lines, "\n")
}

// Meta describes the run parameters echoed into the JSON report.
type Meta struct {
	InputSize  string `json:"input_size"`
	InputBytes int64  `json:"input_bytes"`
	Encoding   string `json:"encoding"`
	Iterations int    `json:"iterations"`
}

type jsonLatency struct {
	Min  int64 `json:"min"`
	P50  int64 `json:"p50"`
	P95  int64 `json:"p95"`
	P99  int64 `json:"p99"`
	Max  int64 `json:"max"`
	Mean int64 `json:"mean"`
}

type jsonResult struct {
	Name           string      `json:"name"`
	Encoding       string      `json:"encoding"`
	InputBytes     int64       `json:"input_bytes"`
	Iterations     int         `json:"iterations"`
	Tokens         int         `json:"tokens"`
	ThroughputMBPS float64     `json:"throughput_mbps"`
	LatencyNS      jsonLatency `json:"latency_ns"`
}

type jsonReport struct {
	Meta    Meta         `json:"meta"`
	Results []jsonResult `json:"results"`
}

// JSON renders the report as indented JSON. Throughput is rounded to four
// decimal places; latency percentiles and the mean are truncated to integer
// nanoseconds.
func JSON(meta Meta, results []*benchmark.Result) ([]byte, error) {
	out := jsonReport{Meta: meta, Results: make([]jsonResult, 0, len(results))}
	for _, r := range results {
		out.Results = append(out.Results, jsonResult{
			Name:           r.Name,
			Encoding:       r.Encoding,
			InputBytes:     r.InputBytes,
			Iterations:     r.Iterations,
			Tokens:         r.Tokens,
			ThroughputMBPS: math.Round(r.ThroughputMBPS()*1e4) / 1e4,
			LatencyNS: jsonLatency{
				Min:  r.MinNS(),
				P50:  r.P50NS(),
				P95:  r.P95NS(),
				P99:  r.P99NS(),
				Max:  r.MaxNS(),
				Mean: int64(r.MeanNS()),
			},
		})
	}
	return json.MarshalIndent(out, "", "  ")
}
