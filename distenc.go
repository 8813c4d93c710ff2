// SPDX-License-Identifier: MIT

package lzma

// encodeDist codes a normal match's 0-based distance d, given its
// length-derived lenState slot, per spec.md §4.3 step 4-5:
//  1. pos-slot := getPosSlot(d), coded via posSlotEncoder[lenState].
//  2. if d >= kStartPosModelIndex: footer/base refine the slot down to the
//     exact distance, either through posEncoders (short distances, slot <
//     kEndPosModelIndex) or through direct bits + posAlignEncoder (far
//     distances).
func encodeDist(rc *rangeCoder, m *probModel, lenSt uint32, d uint32) {
	slot := getPosSlot(d)
	rc.bittree(m.posSlotEncoder[lenSt][:], kNumPosSlotBits, slot)

	if slot < kStartPosModelIndex {
		return
	}
	footer := (slot >> 1) - 1
	base := (2 | (slot & 1)) << footer

	if slot < kEndPosModelIndex {
		rc.bittreeReverse(m.posEncoders[base:], footer, d-base)
		return
	}
	rc.direct((d-base)>>kNumAlignBits, footer-kNumAlignBits)
	rc.bittreeReverse(m.posAlignEncoder[:], kNumAlignBits, (d-base)&(kAlignTableSize-1))
}

// encodeEOPMDist codes the distance half of the synthetic end-of-payload
// marker: pos-slot 63 (six set bits) in posSlotEncoder[lenState(2)], then
// 30-4 direct 1-bits, then 4 align 1-bits, per spec.md §4.3 "End-of-payload
// marker" and §9's align-bits Open Question resolution (the reverse tree
// takes dist_reduced & 0xF, not the raw distance).
//
// It takes the posSlot row and the align table as plain slices, rather
// than a *probModel; its only caller is encodeEOPM. eopmCost measures an
// EOPM's encoded size by running encodeEOPM against a scratch probModel,
// so the live model is not mutated.
func encodeEOPMDist(rc *rangeCoder, posSlotRow []prob, posAlign []prob) {
	const slot = kNumPosSlots - 1 // 63
	rc.bittree(posSlotRow, kNumPosSlotBits, slot)
	rc.direct(0xFFFFFFFF>>kNumAlignBits, 30-kNumAlignBits)
	rc.bittreeReverse(posAlign, kNumAlignBits, 0xF)
}

// encodeEOPM codes the complete end-of-payload marker symbol: per
// spec.md §4.5 step 4, this is the full normal-match sequence
// (isMatch[state][pos_state]=1, isRep[state]=0, a length-2 code through
// lenEnc) followed by encodeEOPMDist's distance bits — not just the
// distance half, since a decoder reading isMatch/isRep/length the way it
// reads any other match has no other way to recognize the marker.
func encodeEOPM(rc *rangeCoder, m *probModel, state uint32, pState uint32) {
	rc.bit(&m.isMatch[state][pState], 1)
	rc.bit(&m.isRep[state], 0)
	encodeLen(rc, &m.lenEnc, pState, kMatchMinLen)
	encodeEOPMDist(rc, m.posSlotEncoder[lenState(kMatchMinLen)][:], m.posAlignEncoder[:])
}
