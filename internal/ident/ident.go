// Package ident mints sequential business keys such as T001, B006, S002.
package ident

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
)

const (
	TrainPrefix   = "T"
	BookingPrefix = "B"
	StaffPrefix   = "S"

	Width = 3
)

// Next returns prefix followed by the highest parsed suffix in items plus one,
// zero-padded to Width digits. Ids with another prefix or a non-numeric suffix are ignored.
func Next[T any](prefix string, items []T, id func(T) string) (string, error) {
	maxSeen := 0
	for _, item := range items {
		n, ok := parse(prefix, id(item))
		if !ok {
			continue
		}
		if n > maxSeen {
			maxSeen = n
		}
	}

	next := maxSeen + 1
	if next > int(math.Pow10(Width))-1 {
		return "", fmt.Errorf("%w: prefix %s", domain.ErrIdentifierExhausted, prefix)
	}

	return fmt.Sprintf("%s%0*d", prefix, Width, next), nil
}

// Valid reports whether id is prefix followed by exactly Width digits.
func Valid(prefix, id string) bool {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok || len(suffix) != Width {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parse(prefix, id string) (int, bool) {
	suffix, ok := strings.CutPrefix(id, prefix)
	if !ok || suffix == "" {
		return 0, false
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
