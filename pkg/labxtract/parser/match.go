package parser

import (
	"strings"
	"unicode"
)

// Matches reports whether a cell's text denotes the given parameter variant.
// A match succeeds on plain substring containment, on containment after
// stripping all whitespace from both sides, or on normalized Levenshtein
// similarity at or above the threshold. The threshold is deliberately
// conservative so short variants do not attract false positives; it
// tolerates minor typo/OCR noise in header labels ("Nitrgen").
func Matches(cellText, variant string, threshold float64) bool {
	text := strings.ToLower(strings.TrimSpace(cellText))
	variant = strings.ToLower(strings.TrimSpace(variant))
	if text == "" || variant == "" {
		return false
	}
	if strings.Contains(text, variant) {
		return true
	}
	if strings.Contains(stripSpace(text), stripSpace(variant)) {
		return true
	}
	return Similarity(text, variant) >= threshold
}

// Similarity returns the normalized Levenshtein similarity of two strings:
// 1 - distance/max(len). Identical strings score 1, disjoint strings
// approach 0.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein(ra, rb))/float64(longest)
}

// levenshtein computes the edit distance between two rune slices with the
// standard two-row dynamic program; insert, delete and substitute each
// cost 1.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
