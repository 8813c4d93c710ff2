// SPDX-License-Identifier: MIT

package lzma

import "sync"

// encoderPool reuses *Encoder values across Compress calls, following the
// same acquire/release shape as sliding_window_pool.go's
// slidingWindowDictPool: an Encoder's probability arrays and hash-chain
// tables are large enough (posEncoders, literal, hashChain.head/chain) that
// discarding and reallocating them on every call is wasteful for callers
// compressing many small buffers.
var encoderPool = sync.Pool{
	New: func() any {
		return &Encoder{}
	},
}

// acquireEncoder fetches an Encoder from the pool, ready for Reset.
func acquireEncoder() *Encoder {
	return encoderPool.Get().(*Encoder)
}

// releaseEncoder returns enc to the pool. It must not be used afterward.
func releaseEncoder(enc *Encoder) {
	if enc == nil {
		return
	}
	enc.data = nil
	enc.parser = nil
	enc.queue = nil
	enc.sink = nil
	enc.dsc = nil
	encoderPool.Put(enc)
}
