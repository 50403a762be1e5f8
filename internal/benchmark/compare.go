// internal/benchmark/compare.go
package benchmark

// Verdict categorizes the relative throughput of candidate vs reference.
type Verdict string

const (
	// VerdictFaster means the candidate's throughput ratio exceeds 1.1.
	VerdictFaster Verdict = "faster"
	// VerdictSlower means the candidate's throughput ratio is below 0.9.
	VerdictSlower Verdict = "slower"
	// VerdictComparable covers ratios in the [0.9, 1.1] band, inclusive.
	VerdictComparable Verdict = "comparable"
	// VerdictIndeterminate is reported when either throughput is zero and
	// the ratio is therefore undefined.
	VerdictIndeterminate Verdict = "indeterminate"
)

// Comparison relates a candidate result to a reference result measured on
// the same corpus.
type Comparison struct {
	Reference   *Result
	Candidate   *Result
	Ratio       float64
	TokensMatch bool
	TokenDiff   int
	Verdict     Verdict
}

// Compare derives the throughput ratio, token-count parity, and verdict for
// a reference/candidate pair. Inputs are never mutated. Token parity is a
// correctness signal and is reported independently of the verdict. If either
// throughput is zero the ratio stays 0 and the verdict is indeterminate.
func Compare(ref, cand *Result) Comparison {
	cmp := Comparison{
		Reference:   ref,
		Candidate:   cand,
		TokensMatch: ref.Tokens == cand.Tokens,
	}
	if diff := ref.Tokens - cand.Tokens; diff < 0 {
		cmp.TokenDiff = -diff
	} else {
		cmp.TokenDiff = diff
	}

	refThroughput := ref.ThroughputMBPS()
	candThroughput := cand.ThroughputMBPS()
	if refThroughput == 0 || candThroughput == 0 {
		cmp.Verdict = VerdictIndeterminate
		return cmp
	}

	cmp.Ratio = candThroughput / refThroughput
	switch {
	case cmp.Ratio > 1.1:
		cmp.Verdict = VerdictFaster
	case cmp.Ratio < 0.9:
		cmp.Verdict = VerdictSlower
	default:
		cmp.Verdict = VerdictComparable
	}
	return cmp
}
