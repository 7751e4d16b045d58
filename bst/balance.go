// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// returned by height when some sub-tree fails the balance test
const unbalanced = -1

// to drive the post-order walk in height
type frame[K cmp.Ordered] struct {
	p        *Node[K]
	expanded bool // children already pushed
}

// IsBalanced - true if at every node the heights of the left and
// right sub-trees differ by at most one
func (tree *Tree[K]) IsBalanced() bool {
	return unbalanced != height(tree.root, true)
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[K]) Height() int {
	return height(tree.root, false)
}

// internal: single post-order pass computing the height of a sub-tree
// if check is set returns unbalanced as soon as any node fails
func height[K cmp.Ordered](root *Node[K], check bool) int {
	heights := []int{}
	stack := []frame[K]{{p: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nil == f.p {
			heights = append(heights, 0)
			continue
		}

		if !f.expanded {
			stack = append(stack,
				frame[K]{p: f.p, expanded: true},
				frame[K]{p: f.p.right},
				frame[K]{p: f.p.left},
			)
			continue
		}

		// left finished before right: heights = [… left right]
		n := len(heights)
		lh := heights[n-2]
		rh := heights[n-1]
		heights = heights[:n-2]

		if check && (lh-rh > 1 || rh-lh > 1) {
			return unbalanced
		}
		heights = append(heights, 1+max(lh, rh))
	}
	return heights[0]
}
