// Package search implements the fuzzy ranker: scoring a signature against a
// query string and keeping the top results across an entire workspace scan.
//
// The scorer is a hand-rolled greedy left-to-right matcher with skim-style
// bonuses rather than a wrapped third-party fuzzy-matching library. The
// ecosystem's closest analog (github.com/sahilm/fuzzy) scores on the fzf
// scale, not the skim scale the original engine and the P2 score>60
// threshold were tuned against; wrapping it would silently change which
// results clear the threshold. This is documented as a deliberate
// standard-library exception.
package search

import (
	"strings"
	"unicode"
)

const (
	scoreMatch       = 16
	bonusConsecutive = 8
	bonusWordStart   = 12
	bonusCamel       = 10
)

// Score scores text against a (possibly multi-word) query: each
// whitespace-separated term of pattern is matched against text
// independently as a subsequence and the matching terms' scores are summed.
// Treating terms independently, rather than requiring the whole pattern
// (spaces included) to subsequence-match in one pass, is what lets a
// natural-language query like "user name" usefully rank identifiers that
// contain only some of its words — a literal space can never match inside
// an identifier, so a single-pass subsequence match against the raw pattern
// would reject every candidate. It returns (0, false) only when no term
// matches at all; higher is better and there is no fixed maximum.
func Score(text, pattern string) (int64, bool) {
	terms := strings.Fields(pattern)
	if len(terms) == 0 {
		return 0, true
	}

	var total int64
	matched := false
	for _, term := range terms {
		if s, ok := scoreTerm(text, term); ok {
			total += s
			matched = true
		}
	}
	if !matched {
		return 0, false
	}
	return total, true
}

// scoreTerm greedily matches pattern's runes against text in order,
// case-insensitively, advancing through text only as far as needed for each
// pattern character. It returns (0, false) if any pattern character cannot
// be found in the remaining text — pattern must be a genuine subsequence of
// text for a match to register at all. A run of immediately consecutive
// matched characters earns a bonus, as does a match that lands on a word
// boundary or a camelCase transition.
func scoreTerm(text, pattern string) (int64, bool) {
	if pattern == "" {
		return 0, true
	}

	t := []rune(text)
	tl := []rune(text2lower(text))
	p := []rune(text2lower(pattern))
	if len(p) > len(tl) {
		return 0, false
	}

	var score int64
	ti := 0
	consecutive := false
	for _, pc := range p {
		found := false
		for ; ti < len(tl); ti++ {
			if tl[ti] == pc {
				score += scoreMatch + charBonus(t, ti)
				if consecutive {
					score += bonusConsecutive
				}
				consecutive = true
				ti++
				found = true
				break
			}
			consecutive = false
		}
		if !found {
			return 0, false
		}
	}
	return score, true
}

// charBonus rewards matches at word boundaries: start of string, after a
// non-alphanumeric separator, or a camelCase transition.
func charBonus(t []rune, i int) int64 {
	if i == 0 {
		return bonusWordStart
	}
	prev := t[i-1]
	cur := t[i]
	if !isWordRune(prev) {
		return bonusWordStart
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return bonusCamel
	}
	return 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func text2lower(s string) string {
	r := []rune(s)
	for i, c := range r {
		r[i] = unicode.ToLower(c)
	}
	return string(r)
}
