package huffpack

import (
	"fmt"
	"unicode/utf8"
)

// freqTable counts symbol occurrences. Iteration order is first-seen so that
// tree construction never depends on map iteration order.
type freqTable struct {
	counts map[rune]int
	order  []rune
}

// countSymbols builds the frequency table for text in a single pass.
// Symbols outside the 16-bit code point range cannot be represented by the
// tree codec and are rejected here, before any encoding work happens.
func countSymbols(text string) (*freqTable, error) {
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: input is not valid UTF-8", ErrUnsupportedSymbol)
	}

	ft := &freqTable{counts: make(map[rune]int)}
	for _, r := range text {
		if r > maxSymbol {
			return nil, fmt.Errorf("%w: U+%04X exceeds 16-bit range", ErrUnsupportedSymbol, r)
		}
		if _, seen := ft.counts[r]; !seen {
			ft.order = append(ft.order, r)
		}
		ft.counts[r]++
	}
	return ft, nil
}

// distinct returns the number of distinct symbols counted.
func (ft *freqTable) distinct() int {
	return len(ft.order)
}
