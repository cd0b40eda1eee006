package md2epub

import (
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// naturalToken is one element of a natural sort key: either a numeric
// run compared by value, or a lower-cased text run compared lexically.
type naturalToken struct {
	num     uint64
	text    string
	numeric bool
}

// naturalKey splits a name into maximal runs of digits and non-digits
// so that "chapter2" sorts before "chapter10".
func naturalKey(name string) []naturalToken {
	var tokens []naturalToken
	var run strings.Builder
	var numeric bool

	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := run.String()
		if numeric {
			tokens = append(tokens, naturalToken{num: parseUint(s), numeric: true})
		} else {
			tokens = append(tokens, naturalToken{text: strings.ToLower(s)})
		}
		run.Reset()
	}

	for _, r := range name {
		isDigit := unicode.IsDigit(r) && r < 128
		if run.Len() > 0 && isDigit != numeric {
			flush()
		}
		numeric = isDigit
		run.WriteRune(r)
	}
	flush()

	return tokens
}

// parseUint converts a digit run to its value, saturating on overflow
// so absurdly long runs still order after shorter ones.
func parseUint(s string) uint64 {
	var n uint64
	for _, r := range s {
		d := uint64(r - '0')
		if n > (^uint64(0)-d)/10 {
			return ^uint64(0)
		}
		n = n*10 + d
	}
	return n
}

// naturalLess compares two names by their natural sort keys element-wise.
func naturalLess(a, b string) bool {
	ka, kb := naturalKey(a), naturalKey(b)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		ta, tb := ka[i], kb[i]
		switch {
		case ta.numeric && tb.numeric:
			if ta.num != tb.num {
				return ta.num < tb.num
			}
		case !ta.numeric && !tb.numeric:
			if ta.text != tb.text {
				return ta.text < tb.text
			}
		default:
			// Mixed token types at the same position: numbers sort first.
			return ta.numeric
		}
	}
	return len(ka) < len(kb)
}

// sortNatural orders paths ascending by the natural key of their base name,
// falling back to the full path for stability between equal base names.
func sortNatural(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		bi, bj := filepath.Base(paths[i]), filepath.Base(paths[j])
		if bi == bj {
			return paths[i] < paths[j]
		}
		return naturalLess(bi, bj)
	})
}
