// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Min - return the lowest key, false if the tree is empty
func (tree *Tree[K]) Min() (K, bool) {
	p := tree.root.first()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// internal: lowest node in a sub-tree
func (p *Node[K]) first() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Max - return the highest key, false if the tree is empty
func (tree *Tree[K]) Max() (K, bool) {
	p := tree.root.last()
	if nil == p {
		var zero K
		return zero, false
	}
	return p.key, true
}

// internal: highest node in a sub-tree
// with duplicates this is the most recently inserted of the highest keys
func (p *Node[K]) last() *Node[K] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// SecondHighest - return the key immediately before the maximum in
// sorted order, false if the tree has less than two nodes
func (tree *Tree[K]) SecondHighest() (K, bool) {
	p := tree.root
	if nil == p || (nil == p.left && nil == p.right) {
		var zero K
		return zero, false
	}

	// walk to the maximum remembering its parent
	up := (*Node[K])(nil)
	for nil != p.right {
		up = p
		p = p.right
	}

	if nil != p.left {
		return p.left.last().key, true
	}

	// no left sub-tree so the parent precedes the maximum
	return up.key, true
}
