// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Find - the shallowest node holding key, nil if key is not in the tree
func (tree *Tree[K]) Find(key K) *Node[K] {
	p := tree.root
	for nil != p {
		switch cmp.Compare(key, p.key) {
		case -1: // key < p.key
			p = p.left
		case +1: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// FindRecursively - same result as Find but descends by recursion
func (tree *Tree[K]) FindRecursively(key K) *Node[K] {
	return search(key, tree.root)
}

func search[K cmp.Ordered](key K, p *Node[K]) *Node[K] {
	if nil == p {
		return nil
	}

	switch cmp.Compare(key, p.key) {
	case -1:
		return search(key, p.left)
	case +1:
		return search(key, p.right)
	default:
		return p
	}
}

// Contains - true if at least one node holds key
func (tree *Tree[K]) Contains(key K) bool {
	return nil != tree.Find(key)
}
