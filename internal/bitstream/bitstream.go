// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

// Package bitstream provides the bit-level reader and writer used by the
// huff codec. Both operate MSB-first within each byte, matching the huff
// stream format. The reader additionally supports rewinding to the start
// of the underlying source, which the two-pass compressor relies on
// between its counting and encoding passes.
package bitstream

import (
	"bufio"
	"errors"
	"io"

	"github.com/icza/bitio"
)

var errNotSeekable = errors.New("bitstream: underlying reader does not support rewinding")

// Reader reads fixed-width bit fields from an underlying byte stream.
type Reader struct {
	src      io.Reader
	buf      *bufio.Reader
	br       *bitio.Reader
	bitsRead uint64
}

// NewReader returns a Reader taking its bits from src.
func NewReader(src io.Reader) *Reader {
	buf := bufio.NewReader(src)
	return &Reader{src: src, buf: buf, br: bitio.NewReader(buf)}
}

// ReadBits reads the next n bits, MSB-first, and returns them as the low
// n bits of the result. It returns io.EOF if the stream is exhausted.
func (r *Reader) ReadBits(n uint8) (uint64, error) {
	v, err := r.br.ReadBits(n)
	if err != nil {
		return 0, err
	}
	r.bitsRead += uint64(n)
	return v, nil
}

// ReadBool reads a single bit.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.br.ReadBool()
	if err != nil {
		return false, err
	}
	r.bitsRead++
	return b, nil
}

// Rewind resets the read cursor to the start of the underlying source and
// discards any partially consumed byte. The source must implement
// io.Seeker.
func (r *Reader) Rewind() error {
	s, ok := r.src.(io.Seeker)
	if !ok {
		return errNotSeekable
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return err
	}
	r.buf.Reset(r.src)
	r.br = bitio.NewReader(r.buf)
	r.bitsRead = 0
	return nil
}

// BitsRead returns the number of bits consumed since creation or the last
// Rewind.
func (r *Reader) BitsRead() uint64 { return r.bitsRead }

// Writer appends fixed-width bit fields to an underlying byte stream,
// buffering partial bytes until Close.
type Writer struct {
	buf         *bufio.Writer
	bw          *bitio.Writer
	bitsWritten uint64
}

// NewWriter returns a Writer emitting bits to dst.
func NewWriter(dst io.Writer) *Writer {
	buf := bufio.NewWriter(dst)
	return &Writer{buf: buf, bw: bitio.NewWriter(buf)}
}

// WriteBits appends the low n bits of v, MSB-first. Bits of v above n
// must be zero.
func (w *Writer) WriteBits(v uint64, n uint8) error {
	if err := w.bw.WriteBits(v, n); err != nil {
		return err
	}
	w.bitsWritten += uint64(n)
	return nil
}

// WriteBool appends a single bit.
func (w *Writer) WriteBool(b bool) error {
	if err := w.bw.WriteBool(b); err != nil {
		return err
	}
	w.bitsWritten++
	return nil
}

// Close zero-fills the final partial byte, if any, and flushes all
// buffered output. It does not close the underlying writer.
func (w *Writer) Close() error {
	if err := w.bw.Close(); err != nil {
		return err
	}
	return w.buf.Flush()
}

// BitsWritten returns the number of bits appended so far, excluding any
// final-byte padding.
func (w *Writer) BitsWritten() uint64 { return w.bitsWritten }
