// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// limits a sub-tree must respect
type bounds[K cmp.Ordered] struct {
	p     *Node[K]
	low   K // keys >= low
	high  K // keys < high
	hasLo bool
	hasHi bool
}

// CheckOrder - verify the ordering of every node and the node count
// returns false with the first misplaced node (nil when only the
// count is wrong) or nil, true if the tree is consistent
func (tree *Tree[K]) CheckOrder() (*Node[K], bool) {
	n := 0
	stack := []bounds[K]{}
	if nil != tree.root {
		stack = append(stack, bounds[K]{p: tree.root})
	}

	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n += 1

		p := b.p
		if b.hasLo && cmp.Less(p.key, b.low) {
			return p, false
		}
		if b.hasHi && !cmp.Less(p.key, b.high) {
			return p, false
		}

		if nil != p.left {
			l := b
			l.p = p.left
			l.high = p.key
			l.hasHi = true
			stack = append(stack, l)
		}
		if nil != p.right {
			r := b
			r.p = p.right
			r.low = p.key
			r.hasLo = true
			stack = append(stack, r)
		}
	}
	return nil, n == tree.count
}
