// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"io"

	"github.com/intel/huffzip/internal/bitstream"
)

// frequencies is a histogram over the full symbol space, indexed by
// symbol value.
type frequencies [numSymbols]uint64

// countFrequencies reads src to exhaustion as 8-bit words and counts
// occurrences per byte value, then forces the end-of-stream symbol to a
// count of exactly one. It consumes src entirely; the caller rewinds it
// before the encoding pass.
func countFrequencies(src *bitstream.Reader) (*frequencies, error) {
	var freq frequencies
	for {
		v, err := src.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		freq[v]++
	}
	freq[pseudoEOF] = 1
	return &freq, nil
}
