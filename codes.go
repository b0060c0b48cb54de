package huffpack

import "fmt"

// symbolCode is one prefix-free codeword: the codeLen lowest bits of code,
// most significant bit first.
type symbolCode struct {
	code    uint64
	codeLen uint8
}

// codeTable maps each symbol to its codeword. Derived once per tree and
// read-only afterwards; the decoder works from the tree, never the table.
type codeTable map[rune]symbolCode

// buildCodes derives the code table by root-to-leaf traversal, appending 0
// for left edges and 1 for right edges. A bare-leaf root (single distinct
// symbol) gets the one-bit code 0, since an empty code cannot be decoded.
func buildCodes(root *node) (codeTable, error) {
	codes := make(codeTable)
	if root.leaf() {
		codes[root.symbol] = symbolCode{code: 0, codeLen: 1}
		return codes, nil
	}
	if err := walkCodes(root, codes, 0, 0); err != nil {
		return nil, err
	}
	return codes, nil
}

func walkCodes(n *node, codes codeTable, code uint64, depth uint8) error {
	if n.leaf() {
		codes[n.symbol] = symbolCode{code: code, codeLen: depth}
		return nil
	}
	// A 64-deep codeword requires Fibonacci-growth frequencies summing past
	// 10^13 symbols, far beyond any in-memory text. Refuse rather than
	// silently truncate.
	if depth == 64 {
		return fmt.Errorf("code length exceeds 64 bits")
	}
	if err := walkCodes(n.left, codes, code<<1, depth+1); err != nil {
		return err
	}
	return walkCodes(n.right, codes, code<<1|1, depth+1)
}
