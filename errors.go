// SPDX-License-Identifier: MIT

package lzma

import "errors"

// Sentinel errors returned by the encoder.
var (
	// ErrNoSpace is returned when the destination buffer's capacity is
	// exhausted. The encoder's state is restored to the last checkpoint;
	// the caller may finalize, with an end-of-payload marker if one still
	// fits. The destination cannot be enlarged in place: SetOutput starts
	// a new, empty destination.
	ErrNoSpace = errors.New("lzma: output capacity exhausted")

	// ErrMatchFinderError reports a matchfinder failure. The bundled
	// hash-chain matchfinder never fails, the fast parser ignores the
	// error result of find, and Encode never returns this value.
	ErrMatchFinderError = errors.New("lzma: matchfinder error")

	// ErrInvalidProperties is returned when Reset is called with
	// out-of-range (lc, lp, pb) values.
	ErrInvalidProperties = errors.New("lzma: invalid lc/lp/pb properties")

	// ErrEmptyOutput reports an empty destination buffer. No function in
	// this package returns it; Compress allocates its own output.
	ErrEmptyOutput = errors.New("lzma: empty destination buffer")

	// ErrCompressInternal names an internal invariant violation
	// (lookahead < len, range < 2^24 after normalization, state out of
	// [0,11]). The encoder does not check these invariants at run time,
	// and no function in this package returns this value.
	ErrCompressInternal = errors.New("lzma: internal encoder error")
)
