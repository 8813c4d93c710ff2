// SPDX-License-Identifier: MIT

package lzma

// EncodeStatus is the result of one Encoder.Encode call, per spec.md §6's
// "encode() -> ok | no_space | mf_error" control surface.
type EncodeStatus int

const (
	StatusOK EncodeStatus = iota
	StatusNoSpace
	StatusMatchFinderError
)

// Encoder drives the fast parser over a fixed input buffer, coding each
// decision with the symbol emitter and committing it through the
// destination-size controller. It owns the probability model, range coder
// and rep ring exclusively; the matchfinder is a borrowed peer, per
// spec.md §5 "Concurrency & Resource Model".
//
// One Encoder value processes one input buffer end to end; Reset rebinds
// it to a new buffer and properties, mirroring the teacher's pattern of a
// reusable compressor struct sized once and reset between uses (see
// pool.go).
type Encoder struct {
	props Properties

	m  probModel
	rc rangeCoder
	st symbolState

	hc     *hashChain
	parser *fastParser

	data []byte
	pos  int
	done bool

	queue []parseDecision

	sink     *byteSink
	dsc      *destSizeController
	needEOPM bool
}

// Reset binds the encoder to data and props, allocating the matchfinder
// and resetting every probability, exactly spec.md §4.6's procedure.
func (e *Encoder) Reset(data []byte, props Properties) error {
	if err := props.Validate(); err != nil {
		return err
	}
	if props.DictSize == 0 {
		props.DictSize = DefaultDictSize
	}

	e.props = props
	e.m.resetFixed()
	e.m.resetLiteral(props.LC, props.LP)
	e.rc.reset()

	e.st.reset()
	e.st.pbMask = (1 << uint(props.PB)) - 1
	e.st.lpMask = (uint32(0x100) << uint(props.LP)) - (uint32(0x100) >> uint(props.LC))
	e.st.lc = uint32(props.LC)

	if e.hc == nil {
		e.hc = newHashChain(data)
	} else {
		e.hc.rebind(data)
	}
	e.hc.reset(props)
	e.parser = newFastParser(data, e.hc)

	e.data = data
	e.pos = 0
	e.done = false
	e.queue = e.queue[:0]
	return nil
}

// SetOutput binds the destination for subsequent Encode/Finalize calls.
// cap < 0 means unbounded (write until the caller's slice grows via
// append); cap >= 0 bounds total emitted bytes, enabling the
// destination-size controller's checkpoint/restore protocol.
func (e *Encoder) SetOutput(cap int) {
	e.sink = &byteSink{cap: cap}
	e.dsc = newDestSizeController(&e.rc, e.sink)
}

// SetNeedEOPM requests an end-of-payload marker at Finalize.
func (e *Encoder) SetNeedEOPM(need bool) { e.needEOPM = need }

// Output returns the bytes committed so far.
func (e *Encoder) Output() []byte { return e.sink.buf }

// Encode processes symbols until the input is exhausted or the
// destination's capacity is exhausted. Each symbol is coded speculatively
// against a snapshot of the range coder and symbol state; if committing it
// would overflow a bounded destination, the snapshot is restored (as if
// the symbol had never been attempted) and StatusNoSpace is returned. The
// parser's decision for the current position is expanded into a small
// queue of single-symbol decisions (the lazy parser may defer one or more
// literals ahead of a match, per spec.md §4.4's nliterals contract) and
// that queue survives a failed attempt so a later Encode call resumes at
// exactly the same symbol. The capacity of the current destination cannot
// be raised: SetOutput replaces it with a new, empty one. The matchfinder
// itself is never driven here: fastParser.next already advances it by
// exactly the bytes this queue accounts for.
func (e *Encoder) Encode() (EncodeStatus, error) {
	for {
		if e.done {
			return StatusOK, nil
		}
		if e.pos >= len(e.data) && len(e.queue) == 0 {
			e.done = true
			return StatusOK, nil
		}

		if len(e.queue) == 0 {
			nlits, back, length := e.parser.next(e.pos, e.st.reps)
			for i := 0; i < nlits; i++ {
				e.queue = append(e.queue, parseDecision{back: MarkLit, length: 1})
			}
			if length > 0 {
				e.queue = append(e.queue, parseDecision{back: back, length: length})
			}
		}

		decision := e.queue[0]

		cp := encoderCheckpoint{rc: e.rc.checkpoint(), st: e.st}
		pos := e.pos
		getByte := func(back uint32) byte { return e.data[pos-int(back)] }
		encodeSymbol(&e.rc, &e.m, &e.st, getByte, decision.back, decision.length)

		if !e.dsc.commit() {
			e.rc.restore(cp.rc)
			e.st = cp.st
			return StatusNoSpace, ErrNoSpace
		}

		e.pos += int(decision.length)
		e.queue = e.queue[1:]
	}
}

// encoderCheckpoint snapshots the range coder and the symbol cursor
// together, so a failed speculative symbol can be undone as a unit; see
// Encode.
type encoderCheckpoint struct {
	rc rcCheckpoint
	st symbolState
}

// Finalize appends the end-of-payload marker (if requested) and the
// 5-byte flush tail, and returns the total number of bytes committed to
// the destination. When needEOPM is set and the destination is bounded, it
// first measures the marker's cost via eopmCost's side-channel encode (no
// mutation of the live model) and fails with ErrNoSpace before touching
// any real state if it would not fit — this is the commit-only-if-it-fits
// half of spec.md §4.5's bounded-flush protocol; the reserved-checkpoint
// half is unnecessary here because the measurement is already exact
// (encodeEOPM's bit sequence does not depend on which probabilities it
// will update, only on their current values, which the scratch copy
// shares).
func (e *Encoder) Finalize() (int, error) {
	if e.needEOPM {
		pState := posState(e.st.position, e.st.pbMask)
		if e.sink.cap >= 0 {
			cost := eopmCost(&e.rc, &e.m, e.st.state, pState)
			if cost < 0 || e.sink.cap-len(e.sink.buf) < cost {
				return 0, ErrNoSpace
			}
		}
		encodeEOPM(&e.rc, &e.m, e.st.state, pState)
	}
	if !e.rc.drain(e.sink) {
		return 0, ErrNoSpace
	}
	if !e.rc.flushTail(e.sink) {
		return 0, ErrNoSpace
	}
	return len(e.sink.buf), nil
}
