package chef

import (
	"fmt"
	"strconv"
)

// parseInt parses a signed decimal integer, used for ingredient values.
func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// parseUint parses an unsigned decimal integer used for ordinal indices,
// Stir's minute counts, and Serves N / Refrigerate-for-N-hours counts.
func parseUint(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative count %q", s)
	}
	return n, nil
}

// stripOrdinalSuffix removes a trailing st/nd/rd/th (in lower, title, or
// upper case) from s, if present and preceded by at least one character. spec.md section 9 documents this as deliberately
// permissive: it does not check that the suffix actually agrees with the
// digit (so "2st" is accepted exactly like "2nd").
func stripOrdinalSuffix(s string) string {
	if len(s) < 3 {
		return s
	}
	suffix := s[len(s)-2:]
	switch suffix {
	case "st", "nd", "rd", "th", "St", "Nd", "Rd", "Th", "ST", "ND", "RD", "TH":
		return s[:len(s)-2]
	default:
		return s
	}
}

// parseOrdinal parses a token like "1st", "21st", or a bare "3" into its
// integer value. It returns ok=false if the remaining text (after
// stripping a suffix, if any) is not a valid non-negative integer.
func parseOrdinal(token string) (int, bool) {
	stripped := stripOrdinalSuffix(token)
	n, err := parseUint(stripped)
	if err != nil {
		return 0, false
	}
	return n, true
}
