// internal/corpus/corpus.go
// Package corpus produces deterministic benchmark input text.
package corpus

import (
	"math/rand"
	"strings"
)

// Vocabulary is the fixed word list used for corpus generation. Words span
// short, medium, long, and technical categories so the generated text
// exercises a realistic mix of token lengths. All entries are ASCII, which
// keeps byte-exact truncation from ever splitting a multi-byte character.
var Vocabulary = []string{
	// Short words
	"the", "a", "an", "is", "it", "to", "of", "in", "on", "at",
	"and", "or", "but", "not", "for", "with", "as", "by", "from",
	// Medium words
	"hello", "world", "this", "that", "have", "been", "will", "would",
	"could", "should", "about", "after", "before", "between", "through",
	"during", "within", "without", "because", "although", "however",
	// Longer words
	"performance", "tokenization", "benchmark", "implementation",
	"optimization", "measurement", "comparison", "throughput",
	"processing", "algorithm", "application", "development",
	// Technical words
	"function", "variable", "parameter", "interface", "component",
	"structure", "encoding", "decoding", "compression", "analysis",
	// Numbers and punctuation contexts
	"100", "2024", "first", "second", "third", "example", "result",
}

// Generate returns English-like text whose UTF-8 byte length is exactly
// sizeBytes. Word selection is driven by a generator seeded from seed, so
// identical (sizeBytes, seed) pairs always yield byte-identical output. The
// generator is local; package-global random state is never touched.
func Generate(sizeBytes int64, seed int64) string {
	if sizeBytes <= 0 {
		return ""
	}

	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.Grow(int(sizeBytes))

	var written int64
	for written < sizeBytes {
		word := Vocabulary[rng.Intn(len(Vocabulary))]
		addition := word
		if written > 0 {
			addition = " " + word
		}
		if written+int64(len(addition)) > sizeBytes {
			b.WriteString(addition[:sizeBytes-written])
			break
		}
		b.WriteString(addition)
		written += int64(len(addition))
	}

	return b.String()
}
