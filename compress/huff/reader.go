// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"io"

	"github.com/intel/huffzip/internal/bitstream"
)

// Decompress decodes a huff stream from src and writes the original bytes
// to dst. It fails with ErrHeader if the stream does not declare the
// expected magic number, and with one of the other package errors if the
// stream is truncated or corrupt.
func Decompress(dst io.Writer, src io.Reader) error {
	r := NewReader(src)
	n, err := io.Copy(dst, r)
	if err != nil {
		return err
	}
	log.Debugf("decompress: %d bits in, %d bytes out", r.in.BitsRead(), n)
	return nil
}

// Reader is an io.ReadCloser decoding a huff stream. The magic number and
// tree header are parsed lazily on the first Read; decoded bytes are then
// produced until the end-of-stream symbol, after which Read returns
// io.EOF.
type Reader struct {
	in   *bitstream.Reader
	root *node
	err  error
}

// NewReader returns a Reader decompressing the huff stream in r.
func NewReader(r io.Reader) *Reader {
	return &Reader{in: bitstream.NewReader(r)}
}

// Reset discards the Reader's state and makes it equivalent to
// NewReader(r), allowing it to be reused.
func (z *Reader) Reset(r io.Reader) error {
	*z = Reader{in: bitstream.NewReader(r)}
	return nil
}

// Close returns any error already encountered during decoding. It does
// not close the underlying reader.
func (z *Reader) Close() error {
	if z.err == io.EOF {
		return nil
	}
	return z.err
}

func (z *Reader) Read(p []byte) (int, error) {
	if z.err != nil {
		return 0, z.err
	}
	if z.root == nil {
		if z.err = z.readHeader(); z.err != nil {
			return 0, z.err
		}
	}
	n := 0
	for n < len(p) {
		v, err := z.decodeSymbol()
		if err != nil {
			z.err = err
			return n, err
		}
		p[n] = v
		n++
	}
	return n, nil
}

// readHeader checks the magic field and reconstructs the code tree.
func (z *Reader) readHeader() error {
	magic, err := z.in.ReadBits(bitsPerInt)
	if err != nil {
		return ErrTruncatedHeader
	}
	if uint32(magic) != Magic {
		return ErrHeader
	}
	z.root, err = readTree(z.in)
	return err
}

// decodeSymbol walks the tree one bit at a time until it lands on a leaf.
// It returns io.EOF when the leaf is the end-of-stream symbol. Running out
// of input before then means the payload is truncated; stepping into an
// absent child or landing on a non-byte symbol means the header was
// corrupt (a well-formed encoder cannot produce either).
func (z *Reader) decodeSymbol() (byte, error) {
	cur := z.root
	for {
		bit, err := z.in.ReadBool()
		if err != nil {
			return 0, ErrTruncatedPayload
		}
		if bit {
			cur = cur.right
		} else {
			cur = cur.left
		}
		if cur == nil {
			return 0, ErrMalformedTree
		}
		if !cur.leaf() {
			continue
		}
		if cur.value == pseudoEOF {
			return 0, io.EOF
		}
		if cur.value >= alphabetSize {
			return 0, ErrMalformedTree
		}
		return byte(cur.value), nil
	}
}
