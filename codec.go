package huffpack

import (
	"fmt"
	"strings"
)

// encodeSymbols concatenates each symbol's codeword in input order.
// Every symbol must have a table entry; the table is normally derived from
// the same text, but the check guards composing the codecs independently.
func encodeSymbols(text string, codes codeTable) (bitSeq, error) {
	bw := newBitSeqWriter()
	for _, r := range text {
		sc, ok := codes[r]
		if !ok {
			return bitSeq{}, fmt.Errorf("%w: U+%04X has no code", ErrUnknownSymbol, r)
		}
		bw.writeBits(sc.code, sc.codeLen)
	}
	return bw.seq()
}

// decodeSymbols walks the tree bit by bit, emitting a symbol and resetting
// to the root at each leaf. The sequence must end exactly at a leaf;
// ending mid-path means the container was tampered with or the tree and
// data sections do not belong together.
func decodeSymbols(s bitSeq, root *node) (string, error) {
	var out strings.Builder

	// Single-symbol tree: every bit stands for the one symbol.
	if root.leaf() {
		for i := 0; i < s.length; i++ {
			out.WriteRune(root.symbol)
		}
		return out.String(), nil
	}

	br := newBitSeqReader(s)
	cur := root
	for br.remaining > 0 {
		bit, err := br.readBool()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrTruncatedStream, err)
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur.leaf() {
			out.WriteRune(cur.symbol)
			cur = root
		}
	}
	if cur != root {
		return "", fmt.Errorf("%w: data ends mid-codeword", ErrTruncatedStream)
	}
	return out.String(), nil
}
