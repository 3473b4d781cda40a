package matcher

import (
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

const (
	unbaseScale = 0.95
	// Length ratio above which partial matches are weighted down harder
	longRatio = 8.0
)

// Scorer returns a similarity in [0,100] between a query and a choice
type Scorer func(query, choice string) float64

// Process lowercases s, turns every non alphanumeric rune into a space and
// trims the result.
func Process(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, s)
	return strings.TrimSpace(mapped)
}

// Ratio is the normalized Levenshtein similarity of a and b. Two empty
// strings are identical.
func Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 100
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

// PartialRatio is the best Ratio of the shorter string against any
// substring of the longer one of the same length, including windows that
// hang off either end.
func PartialRatio(a, b string) float64 {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		if len(long) == 0 {
			return 100
		}
		return 0
	}

	needle := string(short)
	best := 0.0
	consider := func(window []rune) bool {
		score := Ratio(needle, string(window))
		if score > best {
			best = score
		}
		return best == 100
	}

	for start := 0; start+len(short) <= len(long); start++ {
		if consider(long[start : start+len(short)]) {
			return best
		}
	}
	for k := 1; k < len(short); k++ {
		if consider(long[:k]) || consider(long[len(long)-k:]) {
			return best
		}
	}
	return best
}

// TokenSortRatio compares both strings after sorting their words
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortedJoin(strings.Fields(a)), sortedJoin(strings.Fields(b)))
}

// TokenSetRatio compares the shared words of both strings against each
// side's full word set. A string whose words are all contained in the other
// scores 100.
func TokenSetRatio(a, b string) float64 {
	ta, tb := uniqueTokens(a), uniqueTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter, diffAB, diffBA := splitTokens(ta, tb)
	if len(inter) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	sect := strings.Join(inter, " ")
	combAB := strings.TrimSpace(sect + " " + strings.Join(diffAB, " "))
	combBA := strings.TrimSpace(sect + " " + strings.Join(diffBA, " "))

	best := Ratio(combAB, combBA)
	if sect != "" {
		best = max(best, Ratio(sect, combAB), Ratio(sect, combBA))
	}
	return best
}

// TokenRatio is the better of TokenSortRatio and TokenSetRatio
func TokenRatio(a, b string) float64 {
	return max(TokenSortRatio(a, b), TokenSetRatio(a, b))
}

// PartialTokenRatio is PartialRatio applied to sorted words and to the
// words each string does not share with the other.
func PartialTokenRatio(a, b string) float64 {
	ta, tb := uniqueTokens(a), uniqueTokens(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	inter, diffAB, diffBA := splitTokens(ta, tb)
	if len(inter) > 0 && (len(diffAB) == 0 || len(diffBA) == 0) {
		return 100
	}

	best := PartialRatio(sortedJoin(strings.Fields(a)), sortedJoin(strings.Fields(b)))
	if len(inter) == 0 {
		return best
	}
	return max(best, PartialRatio(strings.Join(diffAB, " "), strings.Join(diffBA, " ")))
}

// WRatio weighs the full, partial and token based ratios by how different
// the string lengths are. Either string being empty scores 0.
func WRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 || lb == 0 {
		return 0
	}

	lenRatio := float64(max(la, lb)) / float64(min(la, lb))
	best := Ratio(a, b)

	if lenRatio < 1.5 {
		return max(best, TokenRatio(a, b)*unbaseScale)
	}

	partialScale := 0.9
	if lenRatio >= longRatio {
		partialScale = 0.6
	}

	best = max(best, PartialRatio(a, b)*partialScale)
	return max(best, PartialTokenRatio(a, b)*unbaseScale*partialScale)
}

func sortedJoin(tokens []string) string {
	sorted := slices.Clone(tokens)
	slices.Sort(sorted)
	return strings.Join(sorted, " ")
}

func uniqueTokens(s string) []string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

// splitTokens returns the sorted intersection and both differences of two
// sorted, de-duplicated token lists.
func splitTokens(a, b []string) (inter, diffAB, diffBA []string) {
	for _, t := range a {
		if _, found := slices.BinarySearch(b, t); found {
			inter = append(inter, t)
		} else {
			diffAB = append(diffAB, t)
		}
	}
	for _, t := range b {
		if _, found := slices.BinarySearch(a, t); !found {
			diffBA = append(diffBA, t)
		}
	}
	return inter, diffAB, diffBA
}
