package huffpack

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 128

// Archiver is a convenience wrapper for callers compressing many files.
// Containers are deterministic functions of (filename, text), so the
// Archiver memoizes them in an LRU keyed by a content hash and skips
// re-encoding identical inputs. Eviction only costs a recompression.
//
// An Archiver is safe for concurrent use.
type Archiver struct {
	cfg   Config
	cache *lru.Cache[uint64, []byte]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// ArchiverStats reports cache effectiveness counters.
type ArchiverStats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// NewArchiver creates an Archiver. Cache capacity is set with
// WithCacheSize; the default holds 128 containers.
func NewArchiver(opts ...Option) *Archiver {
	cfg := resolveConfig(opts)
	size := cfg.CacheSize
	if size <= 0 {
		size = defaultCacheSize
	}
	// lru.New only fails for non-positive sizes, which are normalized above.
	cache, _ := lru.New[uint64, []byte](size)
	return &Archiver{cfg: cfg, cache: cache}
}

// Compress behaves exactly like the package-level Compress, consulting the
// memoization cache first. The returned slice is always a private copy.
func (a *Archiver) Compress(text, filename string) ([]byte, error) {
	key := cacheKey(filename, text)
	if cached, ok := a.cache.Get(key); ok {
		a.hits.Add(1)
		out := make([]byte, len(cached))
		copy(out, cached)
		return out, nil
	}
	a.misses.Add(1)

	containerBytes, err := Compress(text, filename)
	if err != nil {
		return nil, err
	}

	stored := make([]byte, len(containerBytes))
	copy(stored, containerBytes)
	a.cache.Add(key, stored)
	return containerBytes, nil
}

// Decompress is a pass-through to the package-level Decompress with the
// Archiver's options applied.
func (a *Archiver) Decompress(containerBytes []byte) (*Result, error) {
	if a.cfg.SkipVerification {
		return Decompress(containerBytes, WithoutVerification())
	}
	return Decompress(containerBytes)
}

// Stats returns a snapshot of the cache counters.
func (a *Archiver) Stats() ArchiverStats {
	return ArchiverStats{
		Hits:    a.hits.Load(),
		Misses:  a.misses.Load(),
		Entries: a.cache.Len(),
	}
}

// cacheKey hashes filename and text with an unambiguous length prefix, so
// ("ab", "c") and ("a", "bc") never share a key.
func cacheKey(filename, text string) uint64 {
	var prefix [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(prefix[:], uint64(len(filename)))

	d := xxhash.New()
	_, _ = d.Write(prefix[:n])
	_, _ = d.WriteString(filename)
	_, _ = d.WriteString(text)
	return d.Sum64()
}
