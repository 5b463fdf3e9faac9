// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import "github.com/intel/huffzip/internal/bitstream"

// maxHeaderDepth bounds the tree-reading recursion. A real tree has at
// most numSymbols+1 leaves (all symbols plus the padding leaf) and so a
// depth below that; anything deeper is a crafted header.
const maxHeaderDepth = 2 * numSymbols

// writeTree serializes the tree in pre-order: a 0 bit for an interior
// node followed by its left and right subtrees, a 1 bit for a leaf
// followed by the symbol value in bitsPerWord+1 bits. No node counts are
// written; the 0/1 markers make the shape self-delimiting.
func writeTree(w *bitstream.Writer, n *node) error {
	if n.leaf() {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return w.WriteBits(uint64(n.value), bitsPerWord+1)
	}
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeTree(w, n.left); err != nil {
		return err
	}
	return writeTree(w, n.right)
}

// readTree reconstructs a tree from its pre-order serialization. Weights
// are not carried by the format and are left zero; they are not needed
// after construction. Stream end during the recursion means the header is
// truncated.
func readTree(r *bitstream.Reader) (*node, error) {
	return readTreeAt(r, 0)
}

func readTreeAt(r *bitstream.Reader, depth int) (*node, error) {
	if depth > maxHeaderDepth {
		return nil, ErrMalformedTree
	}
	isLeaf, err := r.ReadBool()
	if err != nil {
		return nil, ErrTruncatedHeader
	}
	if isLeaf {
		v, err := r.ReadBits(bitsPerWord + 1)
		if err != nil {
			return nil, ErrTruncatedHeader
		}
		return &node{value: int(v)}, nil
	}
	left, err := readTreeAt(r, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTreeAt(r, depth+1)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}
