// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/configuration"
	"github.com/bitmark-inc/bst/fault"
)

// supported key types
const (
	integerKeys = "integer"
	floatKeys   = "float"
	stringKeys  = "string"
)

// basic defaults (directories and files are relative to the
// directory containing the configuration file)
const (
	defaultKeyType = integerKeys

	defaultLogDirectory = "log"
	defaultLogFile      = "bst.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// fresh map each time as the configuration is decoded into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		"main":            "info",
		"tree":            "info",
		logger.DefaultTag: "critical",
	}
}

// Configuration - the contents of the Lua configuration file
type Configuration struct {
	KeyType   string               `gluamapper:"key_type" json:"key_type"`
	Keys      []string             `gluamapper:"keys" json:"keys"`
	Find      []string             `gluamapper:"find" json:"find"`
	Remove    []string             `gluamapper:"remove" json:"remove"`
	Insert    []string             `gluamapper:"insert" json:"insert"`
	Recursive bool                 `gluamapper:"recursive" json:"recursive"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundConfigFile
		}
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		KeyType: defaultKeyType,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.KeyType = strings.ToLower(strings.TrimSpace(options.KeyType))
	switch options.KeyType {
	case integerKeys, floatKeys, stringKeys:
	default:
		return nil, fault.ErrInvalidKeyType
	}

	// logging directory must exist
	options.Logging.Directory = configuration.EnsureAbsolute(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
