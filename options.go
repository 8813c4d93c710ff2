// SPDX-License-Identifier: MIT

package lzma

// Properties configures the probability model and matchfinder: the literal
// context/position bits, the dictionary size, and the matchfinder's search
// effort.
type Properties struct {
	// LC is the number of literal context bits, [0, 8].
	LC int
	// LP is the number of literal position bits, [0, 4].
	LP int
	// PB is the number of position bits used for match/length contexts, [0, 4].
	PB int
	// DictSize bounds match distances; matches never reference more than
	// DictSize bytes behind the current position.
	DictSize uint32
	// NiceLen is the match length at which the parser stops searching for
	// something better and emits immediately.
	NiceLen uint32
	// Depth bounds the matchfinder's hash-chain walk length.
	Depth uint32
}

// Validate reports ErrInvalidProperties if lc, lp or pb are out of range.
func (p Properties) Validate() error {
	if p.LC < lcMin || p.LC > lcMax {
		return ErrInvalidProperties
	}
	if p.LP < lpMin || p.LP > lpMax {
		return ErrInvalidProperties
	}
	if p.PB < pbMin || p.PB > pbMax {
		return ErrInvalidProperties
	}
	return nil
}

// EncodeOptions configures a single Compress call.
type EncodeOptions struct {
	// Level picks a (lc, lp, pb, nice_len, depth) preset via
	// DefaultProperties when Props is the zero value.
	Level int
	// Props overrides the level-derived defaults when non-zero (DictSize != 0).
	Props Properties
	// NeedEOPM requests an end-of-payload marker and an "unknown size"
	// header, instead of stopping at exact input exhaustion.
	NeedEOPM bool
	// DictSize overrides the level-derived dictionary size directly,
	// without requiring the caller to fill in Props. Ignored when Props
	// is already non-zero. CompressDict is shorthand for setting this.
	DictSize uint32
}

// DefaultEncodeOptions returns options for level 6 (a middle-ground default,
// matching the reference encoder's own driver defaults) with a 1 MiB
// dictionary (Compress's DefaultDictSize fallback) and no end-of-payload
// marker.
func DefaultEncodeOptions() *EncodeOptions {
	return &EncodeOptions{
		Level:    6,
		NeedEOPM: false,
	}
}

// resolveProperties returns o.Props if it was explicitly set (DictSize != 0);
// otherwise the level-derived default, sized by o.DictSize if set or
// fallbackDictSize otherwise.
func (o *EncodeOptions) resolveProperties(fallbackDictSize uint32) Properties {
	if o.Props.DictSize != 0 {
		return o.Props
	}
	p := DefaultProperties(o.Level)
	if o.DictSize != 0 {
		p.DictSize = o.DictSize
	} else {
		p.DictSize = fallbackDictSize
	}
	return p
}
