// internal/corpus/size.go
package corpus

import (
	"fmt"
	"strconv"
	"strings"
)

// sizeSuffixes maps human-readable size suffixes to byte multipliers.
// Ordered longest-first so "KB" is tried before "B".
var sizeSuffixes = []struct {
	suffix     string
	multiplier int64
}{
	{"GB", 1024 * 1024 * 1024},
	{"MB", 1024 * 1024},
	{"KB", 1024},
	{"B", 1},
}

// ParseSize converts a human-readable size string such as "1KB", "10MB", or
// "2.5GB" into a byte count. A bare integer is taken as bytes. Parsing is
// case-insensitive and surrounding whitespace is ignored.
func ParseSize(s string) (int64, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty size string")
	}

	for _, entry := range sizeSuffixes {
		if !strings.HasSuffix(cleaned, entry.suffix) {
			continue
		}
		numStr := strings.TrimSpace(strings.TrimSuffix(cleaned, entry.suffix))
		num, err := strconv.ParseFloat(numStr, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid size %q: %w", s, err)
		}
		if num < 0 {
			return 0, fmt.Errorf("invalid size %q: negative", s)
		}
		return int64(num * float64(entry.multiplier)), nil
	}

	num, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if num < 0 {
		return 0, fmt.Errorf("invalid size %q: negative", s)
	}
	return num, nil
}
