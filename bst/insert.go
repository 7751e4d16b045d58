// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Insert - add a new leaf holding key, duplicates go to the right
// returns the tree to allow chaining
func (tree *Tree[K]) Insert(key K) *Tree[K] {
	n := &Node[K]{key: key}
	tree.count += 1

	if nil == tree.root {
		tree.root = n
		return tree
	}

	p := tree.root
	for {
		if cmp.Less(key, p.key) {
			if nil == p.left {
				p.left = n
				return tree
			}
			p = p.left
		} else {
			if nil == p.right {
				p.right = n
				return tree
			}
			p = p.right
		}
	}
}

// InsertRecursively - same result as Insert but descends by recursion
func (tree *Tree[K]) InsertRecursively(key K) *Tree[K] {
	n := &Node[K]{key: key}
	tree.count += 1

	if nil == tree.root {
		tree.root = n
		return tree
	}
	insert(n, tree.root)
	return tree
}

// internal routine for recursive insert
func insert[K cmp.Ordered](n *Node[K], p *Node[K]) {
	if cmp.Less(n.key, p.key) {
		if nil == p.left {
			p.left = n
			return
		}
		insert(n, p.left)
		return
	}
	if nil == p.right {
		p.right = n
		return
	}
	insert(n, p.right)
}
