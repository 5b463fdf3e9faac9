// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package huff implements the tree-serialized Huffman stream format.
//
// A compressed stream consists of a 32-bit magic number, a serialized code
// tree, and the bit-packed payload. The tree is written as a pre-order bit
// sequence: a 0 bit introduces an interior node followed by its left and
// right subtrees, a 1 bit introduces a leaf followed by its 9-bit symbol
// value. The payload is the concatenation of the Huffman codes for each
// input byte in order, terminated by the code for the reserved
// end-of-stream symbol. There are no length prefixes or checksums; the
// stream is self-delimiting.
//
// Compression requires two passes over the input (one to count symbol
// frequencies, one to encode), so Compress takes an io.ReadSeeker. The
// Writer type offers a plain io.WriteCloser interface by buffering written
// data until Close.
package huff

import "github.com/op/go-logging"

var log = logging.MustGetLogger("huffzip/huff")

const (
	bitsPerWord = 8
	bitsPerInt  = 32

	// alphabetSize is the number of literal byte values.
	alphabetSize = 1 << bitsPerWord

	// pseudoEOF is the reserved symbol terminating the payload in-band.
	// It is outside the byte range, so it can never be produced by the
	// counting pass; the compressor gives it a count of exactly one.
	pseudoEOF = alphabetSize

	// numSymbols spans the literal bytes plus pseudoEOF.
	numSymbols = alphabetSize + 1

	// paddingLeaf is the synthesized sibling used when the symbol set
	// would otherwise produce a one-leaf tree (empty input). It is
	// disjoint from both the byte range and pseudoEOF, fits the 9-bit
	// header field, and is never emitted by a well-formed encoder's
	// payload.
	paddingLeaf = pseudoEOF + 1

	huffNumber = 0xface8200
)

// Magic identifies the tree-header stream framing. A decoder rejects any
// stream whose first 32 bits do not equal this value.
const Magic uint32 = huffNumber | 1
