// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/fault"
)

// run - build a tree from the configured keys and run the commands on it
func run(w io.Writer, conf *Configuration, commands []string) error {
	log := logger.New("tree")

	switch conf.KeyType {
	case integerKeys:
		return execute(w, log, conf, commands, strconv.Atoi)
	case floatKeys:
		return execute(w, log, conf, commands, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	case stringKeys:
		return execute(w, log, conf, commands, func(s string) (string, error) {
			return s, nil
		})
	default:
		return fault.ErrInvalidKeyType
	}
}

// convert the text form of keys
func parseKeys[K cmp.Ordered](text []string, parse func(string) (K, error)) ([]K, error) {
	keys := make([]K, 0, len(text))
	for _, s := range text {
		k, err := parse(s)
		if nil != err {
			return nil, fault.InvalidError(fault.ErrInvalidKey.Error() + ": " + strconv.Quote(s))
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// internal: parse every key list then build the tree and process
func execute[K cmp.Ordered](w io.Writer, log *logger.L, conf *Configuration, commands []string, parse func(string) (K, error)) error {
	keys, err := parseKeys(conf.Keys, parse)
	if nil != err {
		return err
	}
	find, err := parseKeys(conf.Find, parse)
	if nil != err {
		return err
	}
	remove, err := parseKeys(conf.Remove, parse)
	if nil != err {
		return err
	}

	insert, err := parseKeys(conf.Insert, parse)
	if nil != err {
		return err
	}

	r := newRunner(w, log, conf.Recursive, find, remove, insert)
	r.build(keys)
	return r.process(commands)
}
