// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/intel/huffzip/internal/bitstream"
)

func compressBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Compress(&buf, bytes.NewReader(data)))
	return buf.Bytes()
}

func decompressBytes(t *testing.T, stream []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Decompress(&buf, bytes.NewReader(stream)))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"single", []byte("x")},
		{"uniform", []byte("aaaaaaaaaaaaaaaa")},
		{"scenario", []byte("AAAAAAAABBBCCD")},
		{"nul-bytes", []byte{0, 0, 0, 1, 0}},
		{"all-values", allBytes},
		{"random-small", randomData(8, 512)},
		{"random-large", randomData(9, 1 << 16)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stream := compressBytes(t, tc.data)
			got := decompressBytes(t, stream)
			if len(tc.data) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, tc.data, got)
			}
		})
	}
}

func TestStreamLayoutScenario(t *testing.T) {
	stream := compressBytes(t, []byte("AAAAAAAABBBCCD"))
	require.Equal(t, Magic, binary.BigEndian.Uint32(stream[:4]))

	// the header after the magic must encode the expected 5-leaf tree
	root, err := readTree(bitstream.NewReader(bytes.NewReader(stream[4:])))
	require.NoError(t, err)
	require.Equal(t, 5, countLeaves(root))

	got := decompressBytes(t, stream)
	require.Equal(t, []byte("AAAAAAAABBBCCD"), got)
	require.Len(t, got, 14)
}

func TestStreamLayoutEmpty(t *testing.T) {
	// magic (32 bits) + degenerate two-leaf header (21 bits) + end marker
	// code (1 bit), zero-filled to a byte boundary: 7 bytes total
	stream := compressBytes(t, nil)
	require.Len(t, stream, 7)
	require.Empty(t, decompressBytes(t, stream))
}

func TestDeterministic(t *testing.T) {
	data := randomData(10, 1<<15)
	require.Equal(t, compressBytes(t, data), compressBytes(t, data))
}

func TestMagicRejection(t *testing.T) {
	stream := compressBytes(t, []byte("AAAAAAAABBBCCD"))

	// HUFF_NUMBER without the tree-framing low bit
	bad := bytes.Clone(stream)
	binary.BigEndian.PutUint32(bad[:4], huffNumber)
	err := Decompress(io.Discard, bytes.NewReader(bad))
	require.ErrorIs(t, err, ErrHeader)

	// arbitrary garbage
	err = Decompress(io.Discard, bytes.NewReader([]byte("not a huff stream")))
	require.ErrorIs(t, err, ErrHeader)
}

func TestTruncationDetected(t *testing.T) {
	stream := compressBytes(t, []byte("AAAAAAAABBBCCD"))
	for i := 0; i < len(stream); i++ {
		var out bytes.Buffer
		err := Decompress(&out, bytes.NewReader(stream[:i]))
		require.Error(t, err, "prefix of %d bytes decoded silently", i)
		switch {
		case i < 4:
			require.ErrorIs(t, err, ErrTruncatedHeader)
		default:
			require.True(t,
				err == ErrTruncatedHeader || err == ErrTruncatedPayload || err == ErrMalformedTree,
				"prefix of %d bytes: unexpected error %v", i, err)
		}
	}
}

func TestWriterMatchesCompress(t *testing.T) {
	data := randomData(11, 4096)

	var direct bytes.Buffer
	require.NoError(t, Compress(&direct, bytes.NewReader(data)))

	var buffered bytes.Buffer
	w := NewWriter(&buffered)
	half := len(data) / 2
	n, err := w.Write(data[:half])
	require.NoError(t, err)
	require.Equal(t, half, n)
	_, err = w.Write(data[half:])
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Equal(t, direct.Bytes(), buffered.Bytes())
}

func TestWriterAfterClose(t *testing.T) {
	w := NewWriter(io.Discard)
	require.NoError(t, w.Close())
	_, err := w.Write([]byte("late"))
	require.Error(t, err)
	// double close reports the first outcome
	require.NoError(t, w.Close())
}

func TestWriterReset(t *testing.T) {
	data := []byte("reset me")
	var first, second bytes.Buffer
	w := NewWriter(&first)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w.Reset(&second)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestReaderStreaming(t *testing.T) {
	data := randomData(12, 1<<14)
	stream := compressBytes(t, data)

	r := NewReader(bytes.NewReader(stream))
	got := make([]byte, 0, len(data))
	buf := make([]byte, 37) // deliberately odd read size
	for {
		n, err := r.Read(buf)
		got = append(got, buf[:n]...)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())
	require.Equal(t, data, got)
}

func TestReaderReset(t *testing.T) {
	data := []byte("read me twice")
	stream := compressBytes(t, data)

	r := NewReader(bytes.NewReader(stream))
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)

	require.NoError(t, r.Reset(bytes.NewReader(stream)))
	got, err = io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestCompressionRatioSkewed(t *testing.T) {
	// heavily skewed input must actually shrink
	data := bytes.Repeat([]byte("aaaaaaab"), 1024)
	stream := compressBytes(t, data)
	require.Less(t, len(stream), len(data))
}

func BenchmarkCompress(b *testing.B) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 1024)
	src := bytes.NewReader(data)
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src.Seek(0, io.SeekStart)
		if err := Compress(io.Discard, src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 1024)
	var stream bytes.Buffer
	if err := Compress(&stream, bytes.NewReader(data)); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Decompress(io.Discard, bytes.NewReader(stream.Bytes())); err != nil {
			b.Fatal(err)
		}
	}
}
