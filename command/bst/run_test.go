// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/fault"
)

const (
	dir = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func sampleConfiguration() *Configuration {
	return &Configuration{
		KeyType: integerKeys,
		Keys:    []string{"5", "3", "8", "1", "4", "7", "9"},
		Find:    []string{"4", "10"},
		Remove:  []string{"5", "6"},
		Insert:  []string{"6", "5"},
	}
}

var sampleCommands = []string{
	"count", "find", "inorder", "bfs", "balanced", "second",
	"remove", "inorder", "check",
}

const sampleOutput = `count: 7
find: 4 found
find: 10 not found
inorder: [1 3 4 5 7 8 9]
bfs: [5 3 8 1 4 7 9]
balanced: true
second: 8
remove: 5 removed
remove: 6 not found
inorder: [1 3 4 7 8 9]
check: ok
`

func TestRunIntegers(t *testing.T) {
	var b bytes.Buffer
	err := run(&b, sampleConfiguration(), sampleCommands)
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, b.String())
}

func TestRunRecursive(t *testing.T) {
	conf := sampleConfiguration()
	conf.Recursive = true

	var b bytes.Buffer
	err := run(&b, conf, sampleCommands)
	require.NoError(t, err)
	assert.Equal(t, sampleOutput, b.String(), "recursive variants must give the same results")
}

func TestRunStrings(t *testing.T) {
	conf := &Configuration{
		KeyType: stringKeys,
		Keys:    []string{"m", "c", "x", "a"},
		Find:    []string{"x"},
	}

	var b bytes.Buffer
	err := run(&b, conf, []string{"preorder", "postorder", "min", "max", "find"})
	require.NoError(t, err)
	assert.Equal(t, "preorder: [m c a x]\npostorder: [a c x m]\nmin: a\nmax: x\nfind: x found\n", b.String())
}

func TestRunFloat(t *testing.T) {
	conf := &Configuration{
		KeyType: floatKeys,
		Keys:    []string{"2.5", "-1", "7.25"},
	}

	var b bytes.Buffer
	err := run(&b, conf, []string{"inorder", "height"})
	require.NoError(t, err)
	assert.Equal(t, "inorder: [-1 2.5 7.25]\nheight: 2\n", b.String())
}

func TestRunEmptyTree(t *testing.T) {
	conf := &Configuration{
		KeyType: integerKeys,
	}

	var b bytes.Buffer
	err := run(&b, conf, []string{"count", "bfs", "second", "balanced", "print"})
	require.NoError(t, err)
	s := b.String()
	assert.True(t, strings.HasPrefix(s, "count: 0\nbfs: []\nsecond: absent\nbalanced: true\n"), "output: %q", s)
	assert.Contains(t, s, "(empty)", "empty tree must still be drawn")
}

func TestRunInsert(t *testing.T) {
	expected := `remove: 5 removed
remove: 6 not found
insert: 6 count: 7
insert: 5 count: 8
inorder: [1 3 4 5 6 7 8 9]
check: ok
`
	commands := []string{"remove", "insert", "inorder", "check"}

	for _, recursive := range []bool{false, true} {
		conf := sampleConfiguration()
		conf.Recursive = recursive

		var b bytes.Buffer
		err := run(&b, conf, commands)
		require.NoError(t, err, "recursive: %v", recursive)
		assert.Equal(t, expected, b.String(), "recursive: %v", recursive)
	}
}

func TestRunInsertWithoutKeys(t *testing.T) {
	conf := sampleConfiguration()
	conf.Insert = nil

	var b bytes.Buffer
	err := run(&b, conf, []string{"insert", "count"})
	require.NoError(t, err)
	assert.Equal(t, "count: 7\n", b.String())
}

func TestRunAll(t *testing.T) {
	var b bytes.Buffer
	err := run(&b, sampleConfiguration(), nil)
	require.NoError(t, err)

	s := b.String()
	for _, c := range allCommands {
		if "print" == c {
			continue
		}
		assert.Contains(t, s, c+":", "missing output of: %s", c)
	}
	assert.Contains(t, s, "[L]", "missing drawing")
}

func TestRunInvalidKey(t *testing.T) {
	conf := sampleConfiguration()
	conf.Keys = append(conf.Keys, "2.5")

	err := run(&bytes.Buffer{}, conf, nil)
	require.Error(t, err)
	assert.True(t, fault.IsErrInvalid(err), "wrong error class: %v", err)
	assert.Contains(t, err.Error(), `"2.5"`)
}

func TestRunUnknownCommand(t *testing.T) {
	var b bytes.Buffer
	err := run(&b, sampleConfiguration(), []string{"count", "rebalance", "inorder"})
	require.Error(t, err)
	assert.True(t, fault.IsErrInvalid(err))
	assert.Equal(t, "count: 7\n", b.String(), "must stop at the unknown command")
}

func TestRunInvalidKeyType(t *testing.T) {
	conf := sampleConfiguration()
	conf.KeyType = "complex"

	err := run(&bytes.Buffer{}, conf, nil)
	assert.Equal(t, fault.ErrInvalidKeyType, err)
}

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "bst.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	require.NoError(t, err, "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    key_type = "String",
    keys = { "b", "a" },
    insert = { "c" },
    recursive = true,
    logging = {
        directory = "logs",
        file = "tree.log",
    },
}
`)

	conf, err := getConfiguration(fileName, nil)
	require.NoError(t, err)

	assert.Equal(t, stringKeys, conf.KeyType)
	assert.Equal(t, []string{"b", "a"}, conf.Keys)
	assert.Equal(t, []string{"c"}, conf.Insert)
	assert.True(t, conf.Recursive)
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), conf.Logging.Directory)
	assert.Equal(t, "tree.log", conf.Logging.File)
	assert.Equal(t, defaultLogSize, conf.Logging.Size, "default size")
	assert.DirExists(t, conf.Logging.Directory)
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `return { keys = { 1, 2 } }`)

	conf, err := getConfiguration(fileName, nil)
	require.NoError(t, err)
	assert.Equal(t, integerKeys, conf.KeyType)
	assert.Equal(t, []string{"1", "2"}, conf.Keys)
	assert.Equal(t, defaultLogFile, conf.Logging.File)
}

func TestGetConfigurationErrors(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "missing.conf"), nil)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)

	fileName := writeConfiguration(t, `return { key_type = "complex" }`)
	_, err = getConfiguration(fileName, nil)
	assert.Equal(t, fault.ErrInvalidKeyType, err)
}

func TestCommandList(t *testing.T) {
	s := commandList()
	assert.True(t, strings.HasSuffix(s, "|all"))
	assert.Equal(t, len(allCommands)+1, len(strings.Split(s, "|")))
}
