// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree over any ordered key
// type
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys smaller than a node are kept in its left sub-tree, all others
// (including equal keys) in its right sub-tree, so duplicates are
// accepted and always descend to the right.  Ordering follows
// cmp.Compare so floating point NaN keys sort before all other values.
// No rebalancing is done: the shape of the tree depends only on the
// order of insertion.
//
// Traversals return complete slices of keys.  Apart from the explicitly
// recursive insert and find variants all walks use heap allocated
// stacks so that a degenerate (chain) tree cannot exhaust the stack.
package bst
