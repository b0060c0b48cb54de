package huffpack

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

// bitSeq is a logical bit sequence, distinct from its packed storage.
// Bits are packed MSB-first; the final partial byte is zero-padded on the
// low end. length is authoritative: padding bits are never part of the
// sequence and readers must not consume them.
type bitSeq struct {
	data   []byte
	length int
}

// byteLen returns the packed size of the sequence in bytes.
func (s bitSeq) byteLen() int {
	return (s.length + 7) / 8
}

// newBitSeq wraps already-packed data with its exact bit length.
// The packed data must be exactly ceil(length/8) bytes.
func newBitSeq(data []byte, length int) (bitSeq, error) {
	if length < 0 {
		return bitSeq{}, fmt.Errorf("negative bit length: %d", length)
	}
	if expected := (length + 7) / 8; len(data) != expected {
		return bitSeq{}, fmt.Errorf("bit length %d needs %d bytes, have %d", length, expected, len(data))
	}
	return bitSeq{data: data, length: length}, nil
}

// bitSeqWriter accumulates bits into a packed buffer. It wraps a bitio.Writer
// so the MSB-first packing and zero padding rules live in one place.
type bitSeqWriter struct {
	buf    bytes.Buffer
	w      *bitio.Writer
	length int
	err    error
}

func newBitSeqWriter() *bitSeqWriter {
	bw := &bitSeqWriter{}
	bw.w = bitio.NewWriter(&bw.buf)
	return bw
}

func (bw *bitSeqWriter) writeBool(b bool) {
	if bw.err != nil {
		return
	}
	if bw.err = bw.w.WriteBool(b); bw.err == nil {
		bw.length++
	}
}

// writeBits writes the n lowest bits of v, most significant first.
func (bw *bitSeqWriter) writeBits(v uint64, n uint8) {
	if bw.err != nil {
		return
	}
	if bw.err = bw.w.WriteBits(v, n); bw.err == nil {
		bw.length += int(n)
	}
}

// seq closes the writer, zero-padding the final byte, and returns the
// accumulated sequence. The writer must not be used afterwards.
func (bw *bitSeqWriter) seq() (bitSeq, error) {
	if bw.err != nil {
		return bitSeq{}, bw.err
	}
	if err := bw.w.Close(); err != nil {
		return bitSeq{}, err
	}
	return bitSeq{data: bw.buf.Bytes(), length: bw.length}, nil
}

// bitSeqReader consumes a bitSeq bit by bit. Reads beyond the logical length
// fail even when padding bits remain in the packed buffer.
type bitSeqReader struct {
	r         *bitio.Reader
	remaining int
}

func newBitSeqReader(s bitSeq) *bitSeqReader {
	return &bitSeqReader{
		r:         bitio.NewReader(bytes.NewReader(s.data)),
		remaining: s.length,
	}
}

var errBitsExhausted = errors.New("bit sequence exhausted")

func (br *bitSeqReader) readBool() (bool, error) {
	if br.remaining < 1 {
		return false, errBitsExhausted
	}
	b, err := br.r.ReadBool()
	if err != nil {
		return false, err
	}
	br.remaining--
	return b, nil
}

func (br *bitSeqReader) readBits(n uint8) (uint64, error) {
	if br.remaining < int(n) {
		return 0, errBitsExhausted
	}
	v, err := br.r.ReadBits(n)
	if err != nil {
		return 0, err
	}
	br.remaining -= int(n)
	return v, nil
}
