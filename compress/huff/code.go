// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

// code is a root-to-leaf path packed into an integer: the MSB of the low
// len bits is the first branch taken, 0 for left and 1 for right.
type code struct {
	bits uint64
	len  uint8
}

// codeTable maps each symbol to its code. Symbols absent from the tree
// keep the zero value (len 0), which the encoder never looks up because
// every counted symbol has a leaf.
type codeTable [paddingLeaf + 1]code

// deriveCodes walks the tree and records each leaf's path. Code widths
// beyond 64 bits would need Fibonacci-distributed counts summing past
// 2^64 input bytes, so the uint64 accumulator is never the limit.
func deriveCodes(root *node) *codeTable {
	t := new(codeTable)
	derive(root, 0, 0, t)
	return t
}

func derive(n *node, bits uint64, depth uint8, t *codeTable) {
	if n.leaf() {
		t[n.value] = code{bits: bits, len: depth}
		return
	}
	derive(n.left, bits<<1, depth+1, t)
	derive(n.right, bits<<1|1, depth+1, t)
}
