// SPDX-License-Identifier: MIT

package lzma

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, lzma test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "zero-run-4k", data: make([]byte, 4096)},
	}
}

func TestCompressDecompress_RoundTripAcrossLevels(t *testing.T) {
	levels := []int{0, 1, 5, 9}

	for _, in := range testInputSet() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				cmp, err := Compress(in.data, &EncodeOptions{Level: level})
				require.NoError(t, err)
				require.GreaterOrEqual(t, len(cmp), headerSize)

				out, err := testDecompress(cmp)
				require.NoError(t, err)
				require.Equal(t, in.data, out)
			})
		}
	}
}

// TestCompressDecompress_PropertyMatrix exercises spec.md §8's round-trip
// property across (lc, lp, pb) combinations spanning each field's full
// documented range independently, including lc+lp>4 (options.go's
// Validate imposes no such cap), and every nice_len spec.md §8 names.
func TestCompressDecompress_PropertyMatrix(t *testing.T) {
	data := bytes.Repeat([]byte("The quick brown fox jumps over the lazy dog. "), 200)

	type combo struct{ lc, lp, pb int }
	combos := []combo{
		{0, 0, 0}, {3, 0, 2}, {0, 4, 0}, {4, 0, 4}, {2, 2, 0}, {8, 0, 0},
	}
	niceLens := []uint32{8, 32, 64, 273}

	for _, c := range combos {
		for _, nl := range niceLens {
			name := fmt.Sprintf("lc%d-lp%d-pb%d/nice%d", c.lc, c.lp, c.pb, nl)
			t.Run(name, func(t *testing.T) {
				props := Properties{
					LC: c.lc, LP: c.lp, PB: c.pb,
					DictSize: DefaultDictSize, NiceLen: nl, Depth: 0,
				}
				opts := &EncodeOptions{Props: props, NeedEOPM: true}
				cmp, err := Compress(data, opts)
				require.NoError(t, err)

				out, err := testDecompress(cmp)
				require.NoError(t, err)
				require.Equal(t, data, out)
			})
		}
	}
}

func TestCompress_DefaultAndExplicitLevels(t *testing.T) {
	data := bytes.Repeat([]byte("ABCDEF123456"), 1024)

	cmpDefault, err := Compress(data, nil)
	require.NoError(t, err)

	cmpLevel6, err := Compress(data, &EncodeOptions{Level: 6})
	require.NoError(t, err)

	require.Equal(t, cmpDefault, cmpLevel6, "nil options should match an explicit level-6 default")

	out, err := testDecompress(cmpDefault)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestCompress_LevelClamping(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 4096)

	cmpNeg, err := Compress(data, &EncodeOptions{Level: -100})
	require.NoError(t, err)
	cmpZero, err := Compress(data, &EncodeOptions{Level: 0})
	require.NoError(t, err)
	require.Equal(t, cmpZero, cmpNeg, "negative level should clamp to level 0")

	cmpHigh, err := Compress(data, &EncodeOptions{Level: 100})
	require.NoError(t, err)
	cmpNine, err := Compress(data, &EncodeOptions{Level: 9})
	require.NoError(t, err)
	require.Equal(t, cmpNine, cmpHigh, "level > 9 should clamp to level 9")
}

func TestCompressDict_DistancesBoundedByDictSize(t *testing.T) {
	data := bytes.Repeat([]byte("xyzzy-plugh-xyzzy-plugh"), 4000)

	cmp, err := CompressDict(data, nil, 1<<16)
	require.NoError(t, err)

	h, err := parseTestHeader(cmp)
	require.NoError(t, err)
	require.Equal(t, uint32(1<<16), h.props.DictSize)

	out, err := testDecompress(cmp)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

// TestCompress_ConcreteScenarios exercises spec.md §8's "Concrete
// scenarios" 1, 3, 5 and 6 (scenario 2's and 4's internal-state assertions
// are covered by TestFastParser_RepMatchOnRun and
// TestEncoder_NoSpaceRestoresCheckpoint respectively). Each subtest asserts
// the round trip (and scenario 6 a non-empty body); the symbol choices the
// subtest names describe are not inspected here.
func TestCompress_ConcreteScenarios(t *testing.T) {
	t.Run("scenario-1-all-literals-plus-eopm", func(t *testing.T) {
		data := []byte("abcde")
		props := Properties{LC: 3, LP: 0, PB: 2, DictSize: 65536, NiceLen: 32}
		cmp, err := Compress(data, &EncodeOptions{Props: props, NeedEOPM: true})
		require.NoError(t, err)

		out, err := testDecompress(cmp)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("scenario-3-normal-match-then-rep-run", func(t *testing.T) {
		data := []byte("abcde_bcdefgh_abcdefghxxxxxxx")
		cmp, err := Compress(data, &EncodeOptions{Level: 9, NeedEOPM: true})
		require.NoError(t, err)
		out, err := testDecompress(cmp)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("scenario-5-zero-run-uses-high-length-branch", func(t *testing.T) {
		data := make([]byte, 4096)
		cmp, err := Compress(data, &EncodeOptions{Level: 9, NeedEOPM: true})
		require.NoError(t, err)
		out, err := testDecompress(cmp)
		require.NoError(t, err)
		require.Equal(t, data, out)
	})

	t.Run("scenario-6-empty-input-with-eopm", func(t *testing.T) {
		cmp, err := Compress(nil, &EncodeOptions{NeedEOPM: true})
		require.NoError(t, err)
		require.Greater(t, len(cmp), headerSize, "body must carry at least the EOPM plus flush tail")

		out, err := testDecompress(cmp)
		require.NoError(t, err)
		require.Empty(t, out)
	})
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint8(0))
	f.Add([]byte("hello world"), uint8(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint8(9))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint8(7))

	f.Fuzz(func(t *testing.T, data []byte, level uint8) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		cmp, err := Compress(data, &EncodeOptions{Level: int(level % 10), NeedEOPM: true})
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		out, err := testDecompress(cmp)
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(out), len(data))
		}
	})
}
