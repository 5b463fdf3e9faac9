// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import "errors"

// Decoding errors. All of them are fatal: the current call stops and no
// partial recovery is attempted.
var (
	// ErrHeader is returned when the stream does not start with Magic.
	ErrHeader = errors.New("huff: invalid magic number")

	// ErrTruncatedHeader is returned when the stream ends while the
	// serialized code tree (or the magic field before it) is being read.
	ErrTruncatedHeader = errors.New("huff: truncated tree header")

	// ErrTruncatedPayload is returned when the stream ends before the
	// end-of-stream symbol has been decoded.
	ErrTruncatedPayload = errors.New("huff: truncated payload, missing end-of-stream marker")

	// ErrMalformedTree is returned when the serialized tree is not one a
	// well-formed encoder could have written: nesting deeper than any
	// real code tree, a one-sided interior node reached during decode,
	// or a decoded symbol outside the byte range.
	ErrMalformedTree = errors.New("huff: malformed code tree")
)

var errWriterClosed = errors.New("huff: writer is closed")
