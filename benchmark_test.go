// SPDX-License-Identifier: MIT

package lzma

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":   bytes.Repeat([]byte("lzma benchmark text payload "), 160),
		"pattern-128k":    bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k": bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
	}
}

func BenchmarkCompress(b *testing.B) {
	levels := []int{1, 6, 9}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				opts := &EncodeOptions{Level: level}
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := Compress(inputData, opts)
					if err != nil {
						b.Fatalf("Compress failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkCompress_DestSizeBounded(b *testing.B) {
	inputData := benchmarkInputSets()["pattern-128k"]
	props := DefaultProperties(6)
	props.DictSize = DefaultDictSize

	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		enc := acquireEncoder()
		if err := enc.Reset(inputData, props); err != nil {
			b.Fatalf("Reset failed: %v", err)
		}
		enc.SetOutput(len(inputData))
		enc.SetNeedEOPM(true)
		if _, err := enc.Encode(); err != nil && err != ErrNoSpace {
			b.Fatalf("Encode failed: %v", err)
		}
		if _, err := enc.Finalize(); err != nil {
			b.Fatalf("Finalize failed: %v", err)
		}
		releaseEncoder(enc)
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	opts := &EncodeOptions{Level: 9}
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressedData, err := Compress(inputData, opts)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		_, err = testDecompress(compressedData)
		if err != nil {
			b.Fatalf("decode failed: %v", err)
		}
	}
}
