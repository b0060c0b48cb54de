package huffpack

import "fmt"

// Tree wire form: pre-order traversal. An internal node is the bit 0 followed
// by its left then right subtree; a leaf is the bit 1 followed by the
// symbol's code point in 16 bits. No weights are stored — the decoder only
// needs the shape and the leaf symbols.

const (
	symbolBits = 16
	maxSymbol  = rune(1<<symbolBits - 1)

	// A well-formed tree has at most 2^16 leaves, so 2^17-1 nodes and a
	// depth below 2^16. Anything deeper is a malformed bitstream.
	maxTreeDepth = 1 << symbolBits
)

// serializeTree encodes the tree as a bit sequence, independent of and
// structurally distinct from the encoded-data sequence.
func serializeTree(root *node) (bitSeq, error) {
	bw := newBitSeqWriter()
	writeNode(bw, root)
	return bw.seq()
}

func writeNode(bw *bitSeqWriter, n *node) {
	if n.leaf() {
		bw.writeBool(true)
		bw.writeBits(uint64(n.symbol), symbolBits)
		return
	}
	bw.writeBool(false)
	writeNode(bw, n.left)
	writeNode(bw, n.right)
}

// deserializeTree reconstructs the tree from its bit sequence. The sequence
// must contain exactly one well-formed tree: running out of bits mid-node or
// leaving bits unconsumed is ErrCorruptTree.
func deserializeTree(s bitSeq) (*node, error) {
	br := newBitSeqReader(s)
	root, err := readNode(br, 0)
	if err != nil {
		return nil, err
	}
	if br.remaining != 0 {
		return nil, fmt.Errorf("%w: %d bits left over after tree", ErrCorruptTree, br.remaining)
	}
	return root, nil
}

func readNode(br *bitSeqReader, depth int) (*node, error) {
	if depth > maxTreeDepth {
		return nil, fmt.Errorf("%w: tree deeper than %d", ErrCorruptTree, maxTreeDepth)
	}

	isLeaf, err := br.readBool()
	if err != nil {
		return nil, fmt.Errorf("%w: bitstream ended mid-node", ErrCorruptTree)
	}
	if isLeaf {
		sym, err := br.readBits(symbolBits)
		if err != nil {
			return nil, fmt.Errorf("%w: bitstream ended mid-symbol", ErrCorruptTree)
		}
		return &node{symbol: rune(sym)}, nil
	}

	left, err := readNode(br, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readNode(br, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
