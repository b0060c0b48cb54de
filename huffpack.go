// Package huffpack is a lossless text compressor built on Huffman coding.
//
// Compression derives a prefix-free code from whole-input symbol statistics,
// encodes the text bit by bit and frames the result — filename, serialized
// tree, packed data, symbol count and a SHA-256 content digest — into a
// single binary container. Decompression parses the container, rebuilds the
// tree and verifies the digest against the decoded text.
//
// All operations are pure functions of their inputs: no shared state, no
// I/O, no internal concurrency. Independent calls are safe to run in
// parallel.
package huffpack

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrFilenameTooLong indicates the filename exceeds the container's
	// one-byte length prefix (255 bytes).
	ErrFilenameTooLong = errors.New("filename too long")
	// ErrUnsupportedSymbol indicates a code point outside the 16-bit range
	// the tree codec can represent, or input that is not valid UTF-8.
	ErrUnsupportedSymbol = errors.New("unsupported symbol")
	// ErrUnknownSymbol indicates a symbol with no code table entry. It can
	// only surface when the encoder and table are composed independently.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrCorruptContainer indicates a structural parse failure: short read,
	// inconsistent lengths or trailing bytes.
	ErrCorruptContainer = errors.New("corrupt container")
	// ErrCorruptTree indicates a malformed or incomplete tree bitstream.
	ErrCorruptTree = errors.New("corrupt tree")
	// ErrTruncatedStream indicates the encoded data ends mid-codeword.
	ErrTruncatedStream = errors.New("truncated stream")
)

// Config holds the tunable behavior shared by Compress, Decompress and
// Archiver.
type Config struct {
	SkipVerification bool // skip digest recompute on decompress
	CacheSize        int  // Archiver memoization capacity (0 = default)
}

// Option is a functional option for configuring the codec.
type Option func(*Config)

// WithoutVerification disables the digest recompute during decompression.
// The decoded text is returned as-is with Verified reported false.
func WithoutVerification() Option {
	return func(c *Config) {
		c.SkipVerification = true
	}
}

// WithCacheSize sets the Archiver's memoization capacity in entries.
func WithCacheSize(n int) Option {
	return func(c *Config) {
		c.CacheSize = n
	}
}

func resolveConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Result is the outcome of one decompression. Integrity problems never fail
// the decode: the text is returned best-effort and the flags report what was
// verified, leaving the decision to reject to the caller.
type Result struct {
	Filename string
	Text     string

	// Verified is true when both the digest and the symbol count match.
	Verified bool
	// DigestOK reports whether the recomputed SHA-256 matches the stored one.
	DigestOK bool
	// CountOK reports whether the decoded length matches the stored count.
	CountOK bool

	OriginalSymbolCount int
	DecodedSymbolCount  int
}

// Compress encodes text into a container carrying filename, the Huffman
// tree, the packed codeword stream, the symbol count and a content digest.
// Compressing the same text and filename twice yields identical bytes.
func Compress(text, filename string, opts ...Option) ([]byte, error) {
	_ = resolveConfig(opts) // no compress-side options yet

	if len(filename) > maxFilenameBytes {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrFilenameTooLong, len(filename), maxFilenameBytes)
	}

	ft, err := countSymbols(text)
	if err != nil {
		return nil, err
	}

	c := &container{
		filename:    filename,
		symbolCount: uint32(utf8.RuneCountInString(text)),
		digest:      digestText(text),
	}

	// Empty input has no tree; both sections stay zero-length.
	if ft.distinct() > 0 {
		root := buildTree(ft)
		codes, err := buildCodes(root)
		if err != nil {
			return nil, err
		}
		if c.data, err = encodeSymbols(text, codes); err != nil {
			return nil, err
		}
		if c.tree, err = serializeTree(root); err != nil {
			return nil, err
		}
	}

	return c.encode()
}

// Decompress parses a container, decodes the text and checks it against the
// stored digest and symbol count. Structural failures return an error;
// integrity mismatches return the text with Verified false.
func Decompress(containerBytes []byte, opts ...Option) (*Result, error) {
	cfg := resolveConfig(opts)

	c, err := parseContainer(containerBytes)
	if err != nil {
		return nil, err
	}

	var text string
	if c.tree.length == 0 {
		// Empty-input container: no tree means no data.
		if c.data.length != 0 {
			return nil, fmt.Errorf("%w: data present without a tree", ErrCorruptContainer)
		}
	} else {
		root, err := deserializeTree(c.tree)
		if err != nil {
			return nil, err
		}
		if text, err = decodeSymbols(c.data, root); err != nil {
			return nil, err
		}
	}

	res := &Result{
		Filename:            c.filename,
		Text:                text,
		OriginalSymbolCount: int(c.symbolCount),
		DecodedSymbolCount:  utf8.RuneCountInString(text),
	}
	if !cfg.SkipVerification {
		res.DigestOK = digestsEqual(digestText(text), c.digest)
		res.CountOK = res.DecodedSymbolCount == res.OriginalSymbolCount
		res.Verified = res.DigestOK && res.CountOK
	}
	return res, nil
}
