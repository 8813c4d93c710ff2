// SPDX-License-Identifier: MIT

package lzma

import (
	"math/bits"
	"unsafe"
)

// matchFinder is the external collaborator spec.md §3/§6 describes: a
// duplicate finder the fast parser drives through find/skip. hashChain is
// the one concrete implementation this module ships, generalizing the
// teacher's LZO1X-999 hash-chain dictionary
// (sliding_window.go/compress_1x_999.go's hcMatch3Table) from LZO's
// bounded offset classes and 1-byte minimum match to LZMA's uniform
// distance model (bounded only by DictSize) and 2-byte minimum match.
type matchFinder interface {
	reset(p Properties)
	find(matches []matchCandidate, finish bool) (int, error)
	skip(n int)
	curPos() int
	lookaheadLen() int
	atEnd() bool
	niceLenValue() uint32
}

// matchCandidate is one matchfinder result: a 1-based raw distance (number
// of bytes back to the start of the match) and a length. find() returns
// candidates sorted ascending by length, per spec.md §3.
type matchCandidate struct {
	dist uint32
	ln   uint32
}

const (
	hcHashBits  = 16
	hcHashSize  = 1 << hcHashBits
	hcNilPos    = -1
	hcMaxMatches = 32
)

// hashChain is a whole-buffer hash-chain matchfinder: the entire input is
// held in memory (the module's single-contiguous-window non-goal, spec.md
// §1), so unlike the teacher's ring-buffer dictionary this walks a flat
// []byte with a 3-byte rolling hash and a position chain, bounded by
// DictSize and a search-depth cutoff exactly like
// compress_1x_999.go's hcMatch3Table.advance.
type hashChain struct {
	data []byte
	pos  int

	dictSize uint32
	niceLen  uint32
	depth    uint32

	head  [hcHashSize]int32
	chain []int32

	matchBuf [hcMaxMatches]matchCandidate
}

func newHashChain(data []byte) *hashChain {
	h := &hashChain{}
	h.rebind(data)
	return h
}

// rebind points the chain at a new buffer, reusing the backing chain slice
// when it is already large enough instead of reallocating, so a pooled
// Encoder's matchfinder (see pool.go) only grows its tables, never
// discards them, across successive Reset calls.
func (h *hashChain) rebind(data []byte) {
	h.data = data
	if cap(h.chain) < len(data) {
		h.chain = make([]int32, len(data))
	} else {
		h.chain = h.chain[:len(data)]
	}
}

func (h *hashChain) reset(p Properties) {
	h.pos = 0
	h.dictSize = p.DictSize
	h.niceLen = p.NiceLen
	h.depth = p.Depth
	if h.depth == 0 {
		h.depth = 32
	}
	for i := range h.head {
		h.head[i] = hcNilPos
	}
}

func (h *hashChain) curPos() int          { return h.pos }
func (h *hashChain) lookaheadLen() int     { return len(h.data) - h.pos }
func (h *hashChain) atEnd() bool           { return h.pos >= len(h.data) }
func (h *hashChain) niceLenValue() uint32  { return h.niceLen }

func hash3(b []byte) uint32 {
	key := uint32(b[0])
	key = key<<5 ^ uint32(b[1])
	key = key<<5 ^ uint32(b[2])
	return (key * 0x9E3779B1) >> (32 - hcHashBits)
}

// insert records the current position in the hash chain for its 3-byte
// prefix, then advances pos by one.
func (h *hashChain) insert() {
	if h.pos+3 <= len(h.data) {
		key := hash3(h.data[h.pos:])
		h.chain[h.pos] = h.head[key]
		h.head[key] = int32(h.pos) //nolint:gosec // G115: pos bounded by len(data)
	}
	h.pos++
}

// skip advances n positions, inserting each into the hash chain without
// producing matches — used after the parser commits to a symbol.
func (h *hashChain) skip(n int) {
	for i := 0; i < n; i++ {
		if h.pos >= len(h.data) {
			return
		}
		h.insert()
	}
}

// find walks the hash chain at the current position, filling matches with
// candidates sorted ascending by length, and returns their count. finish
// has no effect here (the whole buffer is already resident), included only
// to satisfy the interface spec.md §6 gives the matchfinder.
func (h *hashChain) find(matches []matchCandidate, finish bool) (int, error) {
	_ = finish
	if h.lookaheadLen() < 3 {
		h.insert()
		return 0, nil
	}

	key := hash3(h.data[h.pos:])
	node := h.head[key]
	h.chain[h.pos] = node
	h.head[key] = int32(h.pos) //nolint:gosec // G115: pos bounded by len(data)

	limit := len(h.data)
	if uint32(h.pos)+kMatchMaxLen < uint32(limit) { //nolint:gosec // G115: pos non-negative
		limit = h.pos + kMatchMaxLen
	}

	var n int
	bestLen := uint32(kMatchMinLen - 1)
	for depth := h.depth; depth > 0 && node != hcNilPos; depth-- {
		dist := h.pos - int(node)
		if h.dictSize != 0 && uint32(dist) > h.dictSize {
			break
		}
		ln := countEqualBytes(h.data[node:limit], h.data[h.pos:limit])
		if ln >= kMatchMinLen && uint32(ln) > bestLen {
			bestLen = uint32(ln)
			if n < len(matches) {
				matches[n] = matchCandidate{dist: uint32(dist), ln: uint32(ln)}
				n++
			} else {
				matches[len(matches)-1] = matchCandidate{dist: uint32(dist), ln: uint32(ln)}
			}
			if bestLen >= h.niceLen || ln >= kMatchMaxLen {
				break
			}
		}
		node = h.chain[node]
	}

	h.pos++
	return n, nil
}

// countEqualBytes returns the length of the common prefix of a and b,
// comparing 8 bytes at a time via unaligned word loads — grounded on
// compress_1x_999.go's countEqualBytes, which uses the same
// unsafe.Pointer + bits.TrailingZeros64 trick to find the first
// mismatching byte within a 64-bit word.
func countEqualBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i+8 <= n {
		wa := *(*uint64)(unsafe.Pointer(&a[i]))
		wb := *(*uint64)(unsafe.Pointer(&b[i]))
		if wa != wb {
			return i + bits.TrailingZeros64(wa^wb)/8
		}
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
