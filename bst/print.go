// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// meta tags for the branches of the drawing
const (
	leftTag  = "L"
	rightTag = "R"
)

// Print - write an ASCII graphic representation of the tree, an
// empty tree is drawn as a single "(empty)" root
// returns the height of the tree
func (tree *Tree[K]) Print(w io.Writer) (int, error) {
	_, err := io.WriteString(w, tree.Draw().String())
	if nil != err {
		return 0, err
	}
	return tree.Height(), nil
}

// a node waiting to be attached to the branch of its parent
type branch[K cmp.Ordered] struct {
	p   *Node[K]
	up  treeprint.Tree
	tag string
}

// Draw - convert the tree to a treeprint tree, each child is tagged
// with the side it hangs from
func (tree *Tree[K]) Draw() treeprint.Tree {
	if nil == tree.root {
		return treeprint.NewWithRoot("(empty)")
	}

	top := treeprint.NewWithRoot(fmt.Sprint(tree.root.key))
	stack := children(tree.root, top, nil)
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := b.up.AddMetaBranch(b.tag, fmt.Sprint(b.p.key))
		stack = children(b.p, t, stack)
	}
	return top
}

// internal: push the children of p, right first so left is drawn first
func children[K cmp.Ordered](p *Node[K], t treeprint.Tree, stack []branch[K]) []branch[K] {
	if nil != p.right {
		stack = append(stack, branch[K]{p: p.right, up: t, tag: rightTag})
	}
	if nil != p.left {
		stack = append(stack, branch[K]{p: p.left, up: t, tag: leftTag})
	}
	return stack
}
