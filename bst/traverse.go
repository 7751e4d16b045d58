// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// PreOrder - keys in node, left, right order
func (tree *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, tree.count)
	if nil == tree.root {
		return keys
	}

	stack := []*Node[K]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		keys = append(keys, p.key)

		// right first so that left is popped first
		if nil != p.right {
			stack = append(stack, p.right)
		}
		if nil != p.left {
			stack = append(stack, p.left)
		}
	}
	return keys
}

// InOrder - keys in left, node, right order, i.e. sorted
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.count)

	stack := []*Node[K]{}
	p := tree.root
	for nil != p || len(stack) > 0 {
		for nil != p {
			stack = append(stack, p)
			p = p.left
		}
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		keys = append(keys, p.key)
		p = p.right
	}
	return keys
}

// PostOrder - keys in left, right, node order
func (tree *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, tree.count)
	if nil == tree.root {
		return keys
	}

	// collect node, right, left then reverse
	stack := []*Node[K]{tree.root}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		keys = append(keys, p.key)

		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}

	for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
		keys[i], keys[j] = keys[j], keys[i]
	}
	return keys
}

// BFS - keys in level order, left to right within each level
func (tree *Tree[K]) BFS() []K {
	keys := make([]K, 0, tree.count)
	if nil == tree.root {
		return keys
	}

	queue := make([]*Node[K], 0, tree.count)
	queue = append(queue, tree.root)
	for head := 0; head < len(queue); head += 1 {
		p := queue[head]

		keys = append(keys, p.key)

		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return keys
}
