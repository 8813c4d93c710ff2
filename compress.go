// SPDX-License-Identifier: MIT

package lzma

import "encoding/binary"

// Compress encodes src as a complete ".lzma alone" stream: a 13-byte
// header followed by the range-coded body. With opts.NeedEOPM the body is
// terminated with an end-of-payload marker and the header's size field
// reads "unknown"; otherwise the header records len(src) and the body stops
// at the end of the input. opts may be nil, in which case
// DefaultEncodeOptions is used.
func Compress(src []byte, opts *EncodeOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	props := opts.resolveProperties(DefaultDictSize)
	if err := props.Validate(); err != nil {
		return nil, err
	}

	enc := acquireEncoder()
	defer releaseEncoder(enc)
	if err := enc.Reset(src, props); err != nil {
		return nil, err
	}
	enc.SetOutput(-1)
	enc.SetNeedEOPM(opts.NeedEOPM)

	for {
		status, err := enc.Encode()
		if status == StatusMatchFinderError {
			return nil, err
		}
		if status == StatusOK {
			break
		}
		// Unbounded output never reports no_space.
		if err != nil {
			return nil, err
		}
	}

	n, err := enc.Finalize()
	if err != nil {
		return nil, err
	}

	uncompressedSize := uint64(len(src))
	if opts.NeedEOPM {
		uncompressedSize = unknownUncompressedSize
	}

	out := make([]byte, headerSize+n)
	writeHeader(out[:headerSize], props, uncompressedSize)
	copy(out[headerSize:], enc.Output())
	return out, nil
}

// CompressDict is Compress with an explicit dictionary size overriding
// whatever DefaultDictSize or opts.Props.DictSize would otherwise select;
// distances never exceed dictSize.
func CompressDict(src []byte, opts *EncodeOptions, dictSize uint32) ([]byte, error) {
	if opts == nil {
		opts = DefaultEncodeOptions()
	}
	o := *opts
	o.DictSize = dictSize
	if o.Props.DictSize != 0 {
		o.Props.DictSize = dictSize
	}
	return Compress(src, &o)
}

// writeHeader encodes the 13-byte ".lzma alone" header into dst, per
// spec.md §6 "Wire format": byte 0 packs (pb, lp, lc); bytes 1-4 are
// dict_size LE u32; bytes 5-12 are the uncompressed size LE u64
// (unknownUncompressedSize for a stream whose length is only recoverable
// by decoding until the EOPM).
func writeHeader(dst []byte, props Properties, uncompressedSize uint64) {
	dst[0] = byte((props.PB*5+props.LP)*9 + props.LC)
	binary.LittleEndian.PutUint32(dst[1:5], props.DictSize)
	binary.LittleEndian.PutUint64(dst[5:13], uncompressedSize)
}
