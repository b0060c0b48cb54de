package huffpack

import (
	"encoding/binary"
	"fmt"
)

// Container byte layout (all integers big-endian, unsigned):
//
//	offset  size        field
//	0       1           filename length L (bytes)
//	1       L           filename bytes
//	1+L     4           tree length T, in bits
//	5+L     ceil(T/8)   tree, bit-packed MSB-first, zero-padded
//	...     4           encoded-data length D, in bits
//	...     ceil(D/8)   encoded data, bit-packed MSB-first, zero-padded
//	...     4           original symbol count
//	...     32          SHA-256 of the plaintext
//
// The container carries no magic or version; it is identified by its
// producer. Parsing is strict: every field is consumed in order and any
// short read, inconsistent length or residual byte is ErrCorruptContainer.
const (
	maxFilenameBytes = 255
	digestSize       = 32

	// Upper bound on tree bits for a well-formed tree: 2^17-1 node markers
	// plus 16 bits per leaf for 2^16 leaves.
	maxTreeBits = (1<<17 - 1) + (1<<16)*symbolBits
)

// container is the parsed on-disk representation of one compression result.
// It is assembled once at compress time and never mutated after encoding.
type container struct {
	filename    string
	tree        bitSeq
	data        bitSeq
	symbolCount uint32
	digest      [digestSize]byte
}

// encode produces the container bytes. It either fully succeeds or returns
// before producing any output.
func (c *container) encode() ([]byte, error) {
	if len(c.filename) > maxFilenameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFilenameTooLong, len(c.filename), maxFilenameBytes)
	}

	size := 1 + len(c.filename) +
		4 + c.tree.byteLen() +
		4 + c.data.byteLen() +
		4 + digestSize
	out := make([]byte, 0, size)

	out = append(out, byte(len(c.filename)))
	out = append(out, c.filename...)
	out = binary.BigEndian.AppendUint32(out, uint32(c.tree.length))
	out = append(out, c.tree.data...)
	out = binary.BigEndian.AppendUint32(out, uint32(c.data.length))
	out = append(out, c.data.data...)
	out = binary.BigEndian.AppendUint32(out, c.symbolCount)
	out = append(out, c.digest[:]...)
	return out, nil
}

// parseContainer parses the layout strictly in field order. It performs no
// Huffman decoding and no hashing; the caller drives both from the result.
func parseContainer(b []byte) (*container, error) {
	p := &containerParser{b: b}

	nameLen := int(p.byte("filename length"))
	name := p.bytes(nameLen, "filename")

	treeBits := int(p.uint32("tree bit length"))
	if treeBits > maxTreeBits {
		return nil, fmt.Errorf("%w: tree length %d bits exceeds maximum %d", ErrCorruptContainer, treeBits, maxTreeBits)
	}
	treeData := p.bytes((treeBits+7)/8, "tree")

	dataBits := int(p.uint32("data bit length"))
	if dataBits < 0 {
		return nil, fmt.Errorf("%w: data bit length overflows", ErrCorruptContainer)
	}
	dataData := p.bytes((dataBits+7)/8, "encoded data")

	symbolCount := p.uint32("symbol count")
	digest := p.bytes(digestSize, "digest")

	if p.err != nil {
		return nil, p.err
	}
	if len(p.b) != p.off {
		return nil, fmt.Errorf("%w: %d trailing bytes after digest", ErrCorruptContainer, len(p.b)-p.off)
	}

	tree, err := newBitSeq(treeData, treeBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}
	data, err := newBitSeq(dataData, dataBits)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptContainer, err)
	}

	c := &container{
		filename:    string(name),
		tree:        tree,
		data:        data,
		symbolCount: symbolCount,
	}
	copy(c.digest[:], digest)
	return c, nil
}

// containerParser tracks an offset into the raw bytes and remembers the
// first failure, so field reads chain without per-field error plumbing.
type containerParser struct {
	b   []byte
	off int
	err error
}

func (p *containerParser) fail(field string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: short read in %s at offset %d", ErrCorruptContainer, field, p.off)
	}
}

func (p *containerParser) byte(field string) byte {
	if p.err != nil {
		return 0
	}
	if p.off+1 > len(p.b) {
		p.fail(field)
		return 0
	}
	v := p.b[p.off]
	p.off++
	return v
}

func (p *containerParser) uint32(field string) uint32 {
	if p.err != nil {
		return 0
	}
	if p.off+4 > len(p.b) {
		p.fail(field)
		return 0
	}
	v := binary.BigEndian.Uint32(p.b[p.off : p.off+4])
	p.off += 4
	return v
}

func (p *containerParser) bytes(n int, field string) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || p.off+n > len(p.b) {
		p.fail(field)
		return nil
	}
	v := p.b[p.off : p.off+n]
	p.off += n
	return v
}
