package corpus

import (
	"strings"
	"testing"
)

func TestGenerateDeterminism(t *testing.T) {
	for _, size := range []int64{0, 1, 5, 100, 4096, 65536} {
		first := Generate(size, 42)
		second := Generate(size, 42)
		if first != second {
			t.Fatalf("Generate(%d, 42) not deterministic", size)
		}
	}
}

func TestGenerateExactByteLength(t *testing.T) {
	for _, size := range []int64{0, 1, 2, 3, 7, 100, 1024, 99999} {
		text := Generate(size, 42)
		if int64(len(text)) != size {
			t.Fatalf("Generate(%d, 42) produced %d bytes", size, len(text))
		}
	}
}

func TestGenerateSeedVariation(t *testing.T) {
	a := Generate(4096, 1)
	b := Generate(4096, 2)
	if a == b {
		t.Fatalf("different seeds produced identical output")
	}
}

func TestGenerateASCIIOnly(t *testing.T) {
	text := Generate(8192, 42)
	for i := 0; i < len(text); i++ {
		if text[i] >= 0x80 {
			t.Fatalf("non-ASCII byte %#x at offset %d", text[i], i)
		}
	}
	if strings.Contains(text, "  ") {
		t.Fatalf("generated text contains consecutive spaces")
	}
}

func TestVocabularyIsASCII(t *testing.T) {
	for _, word := range Vocabulary {
		for i := 0; i < len(word); i++ {
			if word[i] >= 0x80 {
				t.Fatalf("vocabulary word %q is not ASCII", word)
			}
		}
	}
}
