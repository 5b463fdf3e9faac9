// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"bytes"
	"io"

	"github.com/intel/huffzip/internal/bitstream"
)

// Compress encodes src into the huff stream format and writes the result
// to dst. It reads src twice: once to count symbol frequencies and once to
// encode, rewinding in between, which is why src must be an io.ReadSeeker.
// The counting pass must complete before the rewind; this is the only
// ordering dependency between the passes.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	in := bitstream.NewReader(src)
	freq, err := countFrequencies(in)
	if err != nil {
		return err
	}
	rawBits := in.BitsRead()
	root := buildTree(freq)
	codes := deriveCodes(root)
	if err := in.Rewind(); err != nil {
		return err
	}

	out := bitstream.NewWriter(dst)
	if err := out.WriteBits(uint64(Magic), bitsPerInt); err != nil {
		return err
	}
	if err := writeTree(out, root); err != nil {
		return err
	}
	for {
		v, err := in.ReadBits(bitsPerWord)
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		c := codes[v]
		if err := out.WriteBits(c.bits, c.len); err != nil {
			return err
		}
	}
	c := codes[pseudoEOF]
	if err := out.WriteBits(c.bits, c.len); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	log.Debugf("compress: %d bits in, %d bits out, %d leaves",
		rawBits, out.BitsWritten(), countLeaves(root))
	return nil
}

// Writer is an io.WriteCloser producing a huff stream. Huffman coding
// needs the complete symbol statistics before any output can be emitted,
// so writes are buffered and the stream is produced on Close.
type Writer struct {
	dst    io.Writer
	buf    bytes.Buffer
	closed bool
	err    error
}

// NewWriter returns a Writer emitting a huff stream to w on Close.
// It is the caller's responsibility to call Close when done; no output at
// all is written before then.
func NewWriter(w io.Writer) *Writer {
	return &Writer{dst: w}
}

// Write buffers p for compression on Close.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errWriterClosed
	}
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// Close compresses the buffered data, writes the stream to the underlying
// writer and flushes it. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	w.closed = true
	w.err = Compress(w.dst, bytes.NewReader(w.buf.Bytes()))
	return w.err
}

// Reset discards the Writer's state and makes it equivalent to
// NewWriter(dst), allowing it to be reused.
func (w *Writer) Reset(dst io.Writer) {
	w.dst = dst
	w.buf.Reset()
	w.closed = false
	w.err = nil
}
