// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/bst"
	"github.com/bitmark-inc/bst/fault"
)

// the commands run by "all" or when none are given, in order
var allCommands = []string{
	"count",
	"find",
	"preorder",
	"inorder",
	"postorder",
	"bfs",
	"balanced",
	"height",
	"min",
	"max",
	"second",
	"check",
	"print",
	"remove",
	"insert",
}

// for the usage message
func commandList() string {
	return strings.Join(append(allCommands, "all"), "|")
}

// holds a tree and the key lists from the configuration
type runner[K cmp.Ordered] struct {
	w         io.Writer
	log       *logger.L
	tree      *bst.Tree[K]
	recursive bool
	find      []K
	remove    []K
	insert    []K
}

func newRunner[K cmp.Ordered](w io.Writer, log *logger.L, recursive bool, find []K, remove []K, insert []K) *runner[K] {
	return &runner[K]{
		w:         w,
		log:       log,
		tree:      bst.New[K](),
		recursive: recursive,
		find:      find,
		remove:    remove,
		insert:    insert,
	}
}

// insert all keys in order
func (r *runner[K]) build(keys []K) {
	for _, k := range keys {
		r.add(k)
	}
	r.log.Infof("inserted: %d keys  recursive: %v", r.tree.Count(), r.recursive)
}

// insert a single key with the configured variant
func (r *runner[K]) add(k K) {
	r.log.Debugf("insert: %v", k)
	if r.recursive {
		r.tree.InsertRecursively(k)
	} else {
		r.tree.Insert(k)
	}
}

// run each command in turn, stop at the first error
func (r *runner[K]) process(commands []string) error {
	if 0 == len(commands) {
		commands = []string{"all"}
	}

	for _, command := range commands {
		if "all" == command {
			if err := r.process(allCommands); nil != err {
				return err
			}
			continue
		}
		r.log.Debugf("command: %q", command)
		if err := r.command(command); nil != err {
			r.log.Errorf("command: %q  error: %s", command, err)
			return err
		}
	}
	return nil
}

// single command dispatcher
func (r *runner[K]) command(command string) error {
	switch command {
	case "count":
		return r.printf("count: %d\n", r.tree.Count())

	case "find":
		for _, k := range r.find {
			var n *bst.Node[K]
			if r.recursive {
				n = r.tree.FindRecursively(k)
			} else {
				n = r.tree.Find(k)
			}
			result := "not found"
			if nil != n {
				result = "found"
			}
			if err := r.printf("find: %v %s\n", k, result); nil != err {
				return err
			}
		}
		return nil

	case "preorder":
		return r.printf("preorder: %v\n", r.tree.PreOrder())
	case "inorder":
		return r.printf("inorder: %v\n", r.tree.InOrder())
	case "postorder":
		return r.printf("postorder: %v\n", r.tree.PostOrder())
	case "bfs":
		return r.printf("bfs: %v\n", r.tree.BFS())

	case "balanced":
		return r.printf("balanced: %v\n", r.tree.IsBalanced())
	case "height":
		return r.printf("height: %d\n", r.tree.Height())

	case "min":
		return r.optional("min", r.tree.Min)
	case "max":
		return r.optional("max", r.tree.Max)
	case "second":
		return r.optional("second", r.tree.SecondHighest)

	case "check":
		if p, ok := r.tree.CheckOrder(); !ok {
			if nil != p {
				fault.Criticalf("misplaced key: %v", p.Key())
			} else {
				fault.Criticalf("count: %d does not match nodes", r.tree.Count())
			}
			return fault.ErrInconsistentTree
		}
		return r.printf("check: ok\n")

	case "print":
		depth, err := r.tree.Print(r.w)
		if nil != err {
			return fault.ErrWriteFailed
		}
		r.log.Infof("print depth: %d", depth)
		return nil

	case "remove":
		for _, k := range r.remove {
			result := "not found"
			if r.tree.Delete(k) {
				result = "removed"
			}
			r.log.Infof("remove: %v %s", k, result)
			if err := r.printf("remove: %v %s\n", k, result); nil != err {
				return err
			}
		}
		return nil

	case "insert":
		for _, k := range r.insert {
			r.add(k)
			if err := r.printf("insert: %v count: %d\n", k, r.tree.Count()); nil != err {
				return err
			}
		}
		return nil

	default:
		return fault.InvalidError(fault.ErrUnknownCommand.Error() + ": " + command)
	}
}

// print a key that may be absent
func (r *runner[K]) optional(title string, f func() (K, bool)) error {
	k, ok := f()
	if !ok {
		return r.printf("%s: absent\n", title)
	}
	return r.printf("%s: %v\n", title, k)
}

func (r *runner[K]) printf(format string, arguments ...interface{}) error {
	if _, err := fmt.Fprintf(r.w, format, arguments...); nil != err {
		return fault.ErrWriteFailed
	}
	return nil
}
