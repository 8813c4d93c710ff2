// SPDX-License-Identifier: MIT

package lzma

import "math/bits"

// bitsLen32 is the number of bits needed to represent v (0 for v==0),
// i.e. floor(log2(v))+1.
func bitsLen32(v uint32) uint32 {
	return uint32(bits.Len32(v))
}

// The 12-state LZMA symbol machine (states 0–6 "literal-recent", 7–11
// "match-recent") and its fixed transition tables, per spec.md §3/§4.3.
// Cross-checked against other_examples/.../ulikunitz-xz__lzma-op_codec.go.go
// (updateStateLiteral/Match/Rep/ShortRep), which expresses the same
// arithmetic without a table.

// stateAfterLiteral is indexed by the state before the literal; L in
// spec.md §4.3.
var stateAfterLiteral = [kNumStates]uint32{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 4, 5}

func updateStateLiteral(state uint32) uint32 {
	return stateAfterLiteral[state]
}

func updateStateMatch(state uint32) uint32 {
	if state < 7 {
		return 7
	}
	return 10
}

func updateStateRep(state uint32) uint32 {
	if state < 7 {
		return 8
	}
	return 11
}

func updateStateShortRep(state uint32) uint32 {
	if state < 7 {
		return 9
	}
	return 11
}

// posState returns position & ((1<<pb)-1).
func posState(position uint32, pbMask uint32) uint32 {
	return position & pbMask
}

// lenState returns min(len-2, 3), the context used to select a pos-slot
// probability row.
func lenState(length uint32) uint32 {
	l := length - kMatchMinLen
	if l > kNumLenToPosStates-1 {
		return kNumLenToPosStates - 1
	}
	return l
}

// getPosSlot maps a 0-based distance to its 6-bit pos-slot category, per
// spec.md §4.2. dist < kStartPosModelIndex (4) maps to itself; above that,
// the slot is 2*bits + a refinement bit, where bits = floor(log2(dist)).
//
// DESIGN.md records why this departs from a literal reading of the anchor
// values spec.md §9 lists for this helper (get_pos_slot(5)=6, etc.): those
// anchors are inconsistent with the base/footer reconstruction formula
// used by the normal-match encoder (§4.3 step 5), which requires
// getPosSlot to be the standard LZMA mapping reproduced here — the one
// also used by other_examples/.../ulikunitz-xz__lzma-dist_codec.go.go.
// Implemented with math/bits instead of a hand-rolled loop.
func getPosSlot(dist uint32) uint32 {
	if dist < kStartPosModelIndex {
		return dist
	}
	n := bitsLen32(dist) - 2
	return 2 + (n << 1) + ((dist >> n) & 1)
}

// repRing is the four-slot ring of most-recently-used 1-based distances.
type repRing [kNumReps]uint32

func newRepRing() repRing {
	return repRing{1, 1, 1, 1}
}

// shiftIn drops reps[3] and inserts a new most-recent 1-based distance at
// reps[0] (used after a normal, non-rep match).
func (r *repRing) shiftIn(dist1based uint32) {
	r[3] = r[2]
	r[2] = r[1]
	r[1] = r[0]
	r[0] = dist1based
}

// promote brings reps[idx] to the front, preserving the relative order of
// the other elements (used after a rep-match with slot idx > 0).
func (r *repRing) promote(idx int) {
	d := r[idx]
	for i := idx; i > 0; i-- {
		r[i] = r[i-1]
	}
	r[0] = d
}
