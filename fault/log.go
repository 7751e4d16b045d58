// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// DefaultChannel - tag used when Initialise is given an empty one
const DefaultChannel = "fault"

// channel for reporting tree inconsistencies
var log *logger.L

// Initialise - open the logger channel used by Criticalf, the logger
// itself must already be initialised
func Initialise(tag string) error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	if "" == tag {
		tag = DefaultChannel
	}
	log = logger.New(tag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	if nil == log {
		return
	}
	log.Flush()
	log = nil
}

// Criticalf - report a broken tree, the message is prefixed with the
// file and line of the caller
//
// before Initialise the message goes to stdout
func Criticalf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%s:%d) %s", filepath.Base(file), line, message)
	}

	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush() // make sure log file is saved
}
