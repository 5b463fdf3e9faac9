// Copyright (c) 2025, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package huff

import "container/heap"

// node is a code tree node. A node is a leaf iff both children are nil;
// there is no separate tag. value is meaningful only for leaves, weight
// only during construction.
type node struct {
	value       int
	weight      uint64
	left, right *node
}

func (n *node) leaf() bool { return n.left == nil && n.right == nil }

// buildTree constructs the minimum-weight code tree for the histogram.
// Leaves are created in ascending symbol order and the heap breaks weight
// ties by insertion sequence, so the tree shape is a pure function of the
// histogram and compression output is reproducible across runs.
//
// The end-of-stream symbol always has a nonzero count, so the heap is
// never empty. If it is the only symbol present (empty input), a padding
// sibling is synthesized so that the tree has two leaves and every code is
// at least one bit wide.
func buildTree(freq *frequencies) *node {
	h := make(treeHeap, 0, 64)
	seq := 0
	for v, c := range freq {
		if c == 0 {
			continue
		}
		h = append(h, treeItem{node: &node{value: v, weight: c}, seq: seq})
		seq++
	}
	heap.Init(&h)
	if h.Len() == 1 {
		heap.Push(&h, treeItem{node: &node{value: paddingLeaf}, seq: seq})
		seq++
	}
	for h.Len() > 1 {
		a := heap.Pop(&h).(treeItem)
		b := heap.Pop(&h).(treeItem)
		heap.Push(&h, treeItem{
			node: &node{
				weight: a.node.weight + b.node.weight,
				left:   a.node,
				right:  b.node,
			},
			seq: seq,
		})
		seq++
	}
	return heap.Pop(&h).(treeItem).node
}

func countLeaves(n *node) int {
	if n.leaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// treeItem pairs a node with its insertion sequence number. The sequence
// number makes the extraction order among equal weights deterministic.
type treeItem struct {
	node *node
	seq  int
}

type treeHeap []treeItem

func (h treeHeap) Len() int { return len(h) }

func (h treeHeap) Less(i, j int) bool {
	if h[i].node.weight != h[j].node.weight {
		return h[i].node.weight < h[j].node.weight
	}
	return h[i].seq < h[j].seq
}

func (h treeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *treeHeap) Push(x any) {
	*h = append(*h, x.(treeItem))
}

func (h *treeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
