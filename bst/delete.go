// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Remove - delete the first node on the search path holding key
// returns the tree to allow chaining, a missing key is ignored
func (tree *Tree[K]) Remove(key K) *Tree[K] {
	tree.Delete(key)
	return tree
}

// Delete - delete the first node on the search path holding key
// returns true if a node was removed
func (tree *Tree[K]) Delete(key K) bool {
	pp := &tree.root
	for nil != *pp {
		switch cmp.Compare(key, (*pp).key) {
		case -1: // key < (*pp).key
			pp = &(*pp).left
		case +1: // key > (*pp).key
			pp = &(*pp).right
		default: // found: delete *pp
			unlink(pp)
			tree.count -= 1
			return true
		}
	}
	return false
}

// internal: remove the node at *pp from the tree
func unlink[K cmp.Ordered](pp **Node[K]) {
	q := *pp

	// leaf or single child: splice the other side into the slot
	if nil == q.left {
		*pp = q.right
		return
	}
	if nil == q.right {
		*pp = q.left
		return
	}

	// two children: the in-order successor is the leftmost node of
	// the right sub-tree, it has no left child
	rr := &q.right
	for nil != (*rr).left {
		rr = &(*rr).left
	}
	r := *rr
	q.key = r.key

	// move the successor's right sub-tree up into its old slot
	*rr = r.right
	r.right = nil
}
