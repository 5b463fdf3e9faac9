// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huffzip provides a lossless byte-stream compressor based on
// Huffman coding. The compressed stream is self-describing: it carries a
// serialized code tree ahead of the bit-packed payload, so the decoder
// needs no out-of-band information. The codec itself lives in
// compress/huff; this package holds format-level helpers.
package huffzip

import (
	"encoding/binary"

	"github.com/intel/huffzip/compress/huff"
)

// Sniff reports whether p begins with the huff stream magic number.
// It returns false for inputs shorter than the magic field. A true result
// means the stream declares the tree-header framing, not that the rest of
// the stream is well formed.
func Sniff(p []byte) bool {
	if len(p) < 4 {
		return false
	}
	return binary.BigEndian.Uint32(p) == huff.Magic
}
