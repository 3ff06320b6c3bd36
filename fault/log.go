// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// message used by every panic raised through this package
const abortMessage = "abort, see last messages in log file"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise
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

// Finalise - flush any data and drop the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Panicf - log the caller and a formatted message then panic
//
// only for structures whose internal bookkeeping is already broken
func Panicf(format string, arguments ...interface{}) {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		message = fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	critical(message)
	Panic(abortMessage)
}

// Panic - final panic
func Panic(message string) {
	critical(message)
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// PanicIfError - panic with the error if it is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	Panic(fmt.Sprintf("%s failed with error: %s", message, err))
}

// log to the channel, or to stdout before Initialise
func critical(message string) {
	if nil == log {
		fmt.Printf("*** %s\n", message)
		return
	}
	log.Critical(message)
	log.Flush()
}
