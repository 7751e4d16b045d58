// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Node - a single key in the tree
type Node[K cmp.Ordered] struct {
	left  *Node[K] // left sub-tree: keys < key
	right *Node[K] // right sub-tree: keys >= key
	key   K
}

// Tree - type to hold the root node of a tree
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New - create an initially empty tree
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Key - read the key from a node
func (p *Node[K]) Key() K {
	return p.key
}

// Left - the left child or nil
func (p *Node[K]) Left() *Node[K] {
	return p.left
}

// Right - the right child or nil
func (p *Node[K]) Right() *Node[K] {
	return p.right
}

// Level - returns the keys at a specific depth of the tree from left
// to right, the root is at depth zero
func (tree *Tree[K]) Level(depth uint) []K {
	keys := []K{}
	if nil == tree.root {
		return keys
	}

	nodes := []*Node[K]{tree.root}
	for ; depth > 0 && len(nodes) > 0; depth -= 1 {
		next := make([]*Node[K], 0, 2*len(nodes))
		for _, p := range nodes {
			if nil != p.left {
				next = append(next, p.left)
			}
			if nil != p.right {
				next = append(next, p.right)
			}
		}
		nodes = next
	}

	for _, p := range nodes {
		keys = append(keys, p.key)
	}
	return keys
}
