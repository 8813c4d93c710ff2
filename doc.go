// SPDX-License-Identifier: MIT

/*
Package lzma implements an LZMA encoder producing ".lzma alone"-compatible
streams: a 13-byte header (lc/lp/pb, dictionary size, uncompressed size)
followed by a range-coded body built from an adaptive 12-state symbol
model, a 4-slot most-recently-used distance ring, and a hash-chain
matchfinder driven by a greedy/lazy fast parser.

This package only encodes. Decoding is intentionally out of scope; tests
use an internal, unexported reference decoder to verify round-trips.

# Compress

Options may be nil (DefaultEncodeOptions: level 6, 1 MiB dictionary):

	out, err := lzma.Compress(data, nil)
	out, err := lzma.Compress(data, &lzma.EncodeOptions{Level: 9})

CompressDict overrides the dictionary size directly:

	out, err := lzma.CompressDict(data, nil, 1<<24)

# Properties

Level maps to a (lc, lp, pb, nice_len, depth) preset via DefaultProperties;
EncodeOptions.Props overrides the preset entirely when its DictSize is
non-zero:

	opts := &lzma.EncodeOptions{
		Props: lzma.Properties{LC: 3, LP: 0, PB: 2, DictSize: 1 << 20, NiceLen: 64, Depth: 0},
	}

# Bounded output

Encoder exposes the lower-level control surface (Reset, SetOutput,
SetNeedEOPM, Encode, Finalize) for callers that need a capacity-bounded
destination rather than Compress's growable one; Encode returns
StatusNoSpace with the encoder restored to its last committed symbol when
the destination is full.
*/
package lzma
