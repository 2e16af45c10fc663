// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for reports from code that has no logger of its own
var log *logger.L

// Initialise - open the PANIC channel, before this Criticalf writes
// to stdout
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Criticalf - log a formatted string prefixed by the caller's file
// and line
func Criticalf(format string, arguments ...interface{}) {
	a := make([]interface{}, 0, 2+len(arguments))
	if _, file, line, ok := runtime.Caller(1); ok {
		format = "(%q:%d) " + format
		a = append(a, file, line)
	}
	a = append(a, arguments...)

	if nil == log {
		fmt.Printf("*** "+format+"\n", a...)
		return
	}
	log.Criticalf(format, a...)
	log.Flush() // make sure log file is saved
}
