package chef

import "strings"

// extractIngredientName implements spec.md section 4.3's
// extract_ingredient_name(tokens, start, terminator?): if tokens[start]
// is "the", skip it, then join tokens up to (but excluding) the first
// occurrence of terminator (or end of list if terminator is absent or
// not found).
func extractIngredientName(tokens []string, start int, terminator string) string {
	if start >= len(tokens) {
		return ""
	}
	if tokens[start] == "the" {
		start++
	}
	end := len(tokens)
	if terminator != "" {
		for i := start; i < len(tokens); i++ {
			if tokens[i] == terminator {
				end = i
				break
			}
		}
	}
	if start >= end {
		return ""
	}
	return strings.Join(tokens[start:end], " ")
}

// extractBowlIndex implements extract_mixing_bowl_index: locate the
// token "mixing"; if absent or at index 0, the bowl is unspecified
// (ok=false, caller decides whether that is a default-to-1 or a fatal
// missing anchor). Otherwise read the ordinal token immediately
// preceding "mixing".
func extractBowlIndex(tokens []string) (index int, ok bool) {
	return extractAnchoredIndex(tokens, "mixing")
}

// extractDishIndex implements extract_baking_dish_index: same shape,
// anchored on "baking".
func extractDishIndex(tokens []string) (index int, ok bool) {
	return extractAnchoredIndex(tokens, "baking")
}

func extractAnchoredIndex(tokens []string, anchor string) (int, bool) {
	pos := indexOf(tokens, anchor)
	if pos <= 0 {
		return 0, false
	}
	ordinalTok := tokens[pos-1]
	if n, ok := parseOrdinal(ordinalTok); ok {
		return n, true
	}
	// The preceding token is neither an ordinal nor a bare number (e.g.
	// "the mixing bowl"): default to index 1, per spec.md section 9's
	// documented behavior for bare "mixing bowl".
	return 1, true
}

func indexOf(tokens []string, target string) int {
	for i, t := range tokens {
		if t == target {
			return i
		}
	}
	return -1
}
