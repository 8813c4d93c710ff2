// SPDX-License-Identifier: MIT

package lzma

// destSizeController implements spec.md §4.5: every symbol is coded
// speculatively, drained into the destination buffer, and rolled back if
// the buffer's remaining capacity is exhausted, so a caller with a fixed
// destination slice gets either a complete valid stream or ErrNoSpace with
// the encoder untouched. Grounded on the checkpoint/restore contract
// rangecoder.go's drain() provides.
type destSizeController struct {
	rc   *rangeCoder
	sink *byteSink
}

func newDestSizeController(rc *rangeCoder, sink *byteSink) *destSizeController {
	return &destSizeController{rc: rc, sink: sink}
}

// commit drains every op appended since the last commit. On success it
// returns true. On failure (sink capacity exhausted) it returns false with
// the range coder's scalars, the probabilities and the sink rolled back to
// their state immediately before this call; the ops stay pending in the
// coder until the caller discards them with rangeCoder.restore.
func (d *destSizeController) commit() bool {
	return d.rc.drain(d.sink)
}

// tryFinalize attempts to commit the pending ops and append the 5-byte
// flush tail, returning the total bytes written. On overflow it leaves the
// sink at its pre-call contents and returns ok=false; the caller may
// shrink the pending work (or report ErrNoSpace) and retry.
func (d *destSizeController) tryFinalize() (n int, ok bool) {
	mark := d.sink.mark()
	if !d.rc.drain(d.sink) {
		return 0, false
	}
	if !d.rc.flushTail(d.sink) {
		d.sink.truncate(mark)
		return 0, false
	}
	return d.sink.mark() - mark, true
}

// eopmCost measures, without mutating rc or m, how many bytes encoding an
// end-of-payload marker plus the flush tail would add from the current
// range-coder and model state. destsize-bounded callers use this to decide
// whether they can still afford to terminate the stream cleanly before
// capacity runs out.
//
// It works by cloning exactly the probabilities encodeEOPM touches —
// isMatch[state][pos_state], isRep[state], lenEnc, the lenState(2)
// pos-slot row, and posAlign, per spec.md §4.5 step 4's list — plus rc's
// scalar state, into a throwaway model/coder pair, running the real
// encodeEOPM/drain/flushTail sequence against an unbounded scratch sink,
// and reading back the byte count. The live coder and model are never
// touched.
func eopmCost(rc *rangeCoder, m *probModel, state, pState uint32) int {
	scratchModel := &probModel{}
	scratchModel.isMatch[state][pState] = m.isMatch[state][pState]
	scratchModel.isRep[state] = m.isRep[state]
	scratchModel.lenEnc = m.lenEnc
	scratchModel.posSlotEncoder[lenState(kMatchMinLen)] = m.posSlotEncoder[lenState(kMatchMinLen)]
	scratchModel.posAlignEncoder = m.posAlignEncoder

	scratch := rangeCoder{
		low:       rc.low,
		rng:       rc.rng,
		cache:     rc.cache,
		cacheSize: rc.cacheSize,
		pos:       rc.pos,
	}
	encodeEOPM(&scratch, scratchModel, state, pState)

	sink := &byteSink{cap: -1}
	if !scratch.drain(sink) {
		// Unbounded sink: drain cannot fail here.
		return -1
	}
	if !scratch.flushTail(sink) {
		return -1
	}
	return sink.mark()
}
