// SPDX-License-Identifier: MIT

package lzma

// fastParser implements spec.md §4.4, the greedy/lazy decision procedure
// grounded on original_source/lzma/lzma_encoder.c's
// lzma_get_optimum_fast: at each position, check the four rep distances
// for a cheap extension of the current match, ask the matchfinder for
// normal-match candidates, shorten the chosen match towards a cheaper
// distance class (the "change_pair" heuristic), and then lazily look one
// or more positions further ahead for a competing candidate before
// committing — deferring literals (nliterals > 0) whenever a later
// position turns out more profitable than the one currently in hand.
type fastParser struct {
	data []byte
	mf   matchFinder

	matchBuf [hcMaxMatches]matchCandidate

	// haveLookahead/lookaheadN cache the matches found by the lazy loop's
	// last probe when next returns without committing that probed
	// position (the "defer to a competing rep" early exit below); the
	// following call to next reuses them instead of re-querying mf,
	// mirroring lzma_get_optimum_fast's mf->lookahead flag.
	haveLookahead bool
	lookaheadN    int
}

func newFastParser(data []byte, mf matchFinder) *fastParser {
	return &fastParser{data: data, mf: mf}
}

// parseDecision is one emitted symbol's (back, length) pair, exactly what
// encodeSymbol consumes: back is MarkLit, a rep slot [0,4), or
// 4+0-based-distance; length is 1 for a literal or short rep, the match
// length otherwise.
type parseDecision struct {
	back   uint32
	length uint32
}

// changePair reports whether bigdist is expensive enough, relative to
// smalldist, that a shorter match at smalldist is preferable — the
// "change_pair" macro of original_source/lzma/lzma_encoder.c.
func changePair(smalldist, bigdist uint32) bool {
	return (bigdist >> 7) > smalldist
}

// repMatchLen returns how many bytes starting at pos match the bytes
// starting dist1based bytes earlier, capped at kMatchMaxLen and by the
// remaining input.
func (fp *fastParser) repMatchLen(pos int, dist1based uint32) uint32 {
	start := pos - int(dist1based)
	if start < 0 {
		return 0
	}
	limit := len(fp.data)
	if pos+kMatchMaxLen < limit {
		limit = pos + kMatchMaxLen
	}
	return uint32(countEqualBytes(fp.data[start:limit], fp.data[pos:limit]))
}

// equalRun reports whether the n bytes at a and b are equal, bounds
// checking both against fp.data so a stale or out-of-range rep distance
// can never panic. n is first clipped to the bytes remaining after a and
// after b, so near the end of the input fewer than n bytes are compared.
func (fp *fastParser) equalRun(a, b, n int) bool {
	if a < 0 || b < 0 || n <= 0 {
		return false
	}
	if m := len(fp.data) - a; m < n {
		n = m
	}
	if m := len(fp.data) - b; m < n {
		n = m
	}
	if n <= 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if fp.data[a+i] != fp.data[b+i] {
			return false
		}
	}
	return true
}

// shortRepAtCurrent reports whether the byte at pos equals the byte
// reps[0] bytes earlier, i.e. whether a one-byte short rep against reps[0]
// (the only rep slot a short rep may code against) can code it.
func (fp *fastParser) shortRepAtCurrent(pos int, reps repRing) bool {
	d := int(reps[0])
	if pos < d {
		return false
	}
	return fp.data[pos] == fp.data[pos-d]
}

// next decides the symbol(s) at pos given the emitter's current rep ring.
// It returns the number of literal bytes the caller must emit first
// (nliterals, possibly 0), followed by a match's (back, length) if
// length > 0 — exactly lzma_get_optimum_fast's (nliterals, back_res,
// len_res) contract. The matchfinder is fully advanced by next itself
// (one insert/find per byte consumed, whether coded as a literal or as
// part of the match); callers must not separately skip or insert.
func (fp *fastParser) next(pos int, reps repRing) (nliterals int, back uint32, length uint32) {
	remaining := len(fp.data) - pos

	var n int
	if fp.haveLookahead {
		n = fp.lookaheadN
		fp.haveLookahead = false
	} else {
		n, _ = fp.mf.find(fp.matchBuf[:], remaining <= kMatchMaxLen)
	}

	if n == 0 || remaining <= 2 {
		if fp.shortRepAtCurrent(pos, reps) {
			return 0, 0, 1
		}
		return 1, 0, 0
	}

	limit := kMatchMaxLen
	if remaining < limit {
		limit = remaining
	}
	niceLen := fp.mf.niceLenValue()

	bestRepSlot := -1
	var bestRepLen uint32
	for slot, d := range reps {
		ln := fp.repMatchLen(pos, d)
		if int(ln) > limit {
			ln = uint32(limit)
		}
		if ln < kMatchMinLen {
			continue
		}
		if ln >= niceLen {
			fp.mf.skip(int(ln) - 1)
			return 0, uint32(slot), ln
		}
		if ln > bestRepLen {
			bestRepLen = ln
			bestRepSlot = slot
		}
	}

	longestLen := fp.matchBuf[n-1].ln
	longestDist := fp.matchBuf[n-1].dist

	if longestLen >= niceLen {
		fp.mf.skip(int(longestLen) - 1)
		return 0, kNumReps + longestDist - 1, longestLen
	}

	// change_pair: shorten towards a cheaper (smaller) distance class as
	// long as it only costs one byte of length.
	for n > 1 {
		victim := fp.matchBuf[n-2]
		if longestLen > victim.ln+1 {
			break
		}
		if !changePair(victim.dist, longestDist) {
			break
		}
		n--
		longestLen = victim.ln
		longestDist = victim.dist
	}

	var longestMatchLength, longestMatchBack uint32
	if longestLen > bestRepLen+1 {
		longestMatchLength, longestMatchBack = longestLen, longestDist
		bestRepLen = 0
		if longestMatchLength < 3 && longestMatchBack > 0x80 {
			if fp.shortRepAtCurrent(pos, reps) {
				return 0, 0, 1
			}
			return 1, 0, 0
		}
	} else {
		longestMatchLength = bestRepLen
		longestMatchBack = 0
	}

	// Lazy lookahead: keep probing one position further while a
	// competing rep or a cheaper/longer normal match keeps winning.
	literalSteps := 0
	for {
		n2, _ := fp.mf.find(fp.matchBuf[:], false)
		if n2 == 0 {
			break
		}
		victim := fp.matchBuf[n2-1]
		if victim.ln+1 < longestMatchLength {
			break
		}

		var rlen uint32
		isNotRep := false
		if bestRepLen == 0 {
			ip1 := pos + literalSteps + 1
			rl := int(longestMatchLength) - 1
			if rl < kMatchMinLen {
				rl = kMatchMinLen
			}
			found := false
			for _, d := range reps {
				if fp.equalRun(ip1, ip1-int(d), rl) {
					found = true
					break
				}
			}
			if found {
				fp.lookaheadN = n2
				fp.haveLookahead = true
				return literalSteps + 1, 0, 0
			}
			rlen = ^uint32(0)
			isNotRep = true
		}

		foundRepSlot := -1
		for slot, d := range reps {
			if d == victim.dist {
				rlen = victim.ln
				foundRepSlot = slot
				isNotRep = false
				break
			}
		}

		if rlen <= bestRepLen {
			break
		}

		if isNotRep {
			if victim.ln+1 == longestMatchLength && !changePair(victim.dist, longestMatchBack) {
				break
			}
			// Mirrors the reference's own asymmetry: victim.dist is
			// converted to 0-based here but longestMatchBack is not,
			// since the latter may already be carrying the sentinel
			// 0 set when the lazy walk started from a rep.
			if victim.ln == longestMatchLength && getPosSlot(victim.dist-1) >= getPosSlot(longestMatchBack) {
				break
			}
			rlen = 0
		}

		longestMatchLength = victim.ln
		longestMatchBack = victim.dist
		bestRepLen = rlen
		bestRepSlot = foundRepSlot
		literalSteps++
	}

	fp.mf.skip(int(longestMatchLength) - 2)
	if bestRepLen > 0 {
		return literalSteps, uint32(bestRepSlot), longestMatchLength
	}
	return literalSteps, kNumReps + longestMatchBack - 1, longestMatchLength
}
