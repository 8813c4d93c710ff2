// SPDX-License-Identifier: MIT

package lzma

// DefaultDictSize is used by DefaultEncodeOptions and by Compress when the
// caller does not set Props.DictSize.
const DefaultDictSize = 1 << 20 // 1 MiB

// DefaultProperties returns the (lc, lp, pb, nice_len, depth) preset for a
// compression level in [0, 9], following lzma_default_properties from
// original_source/lzma/lzma_encoder.c: lc=3, lp=0, pb=2 always; nice_len is
// 32 below level 7 and 64 from level 7 up; depth is derived from nice_len.
func DefaultProperties(level int) Properties {
	if level < 0 {
		level = 0
	}
	if level > 9 {
		level = 9
	}
	niceLen := uint32(32)
	if level >= 7 {
		niceLen = 64
	}
	depth := (16 + niceLen/2) / 2
	return Properties{
		LC:      3,
		LP:      0,
		PB:      2,
		NiceLen: niceLen,
		Depth:   depth,
	}
}
