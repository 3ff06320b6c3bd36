// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrCellBlockInvalid     = InvalidError("cell block is invalid")
	ErrCellNumberInvalid    = InvalidError("cell number is invalid")
	ErrConfigurationFile    = NotFoundError("configuration file is not found")
	ErrCrimeInvalid         = InvalidError("crime is invalid")
	ErrDataDirectory        = InvalidError("data directory is invalid")
	ErrDatabaseClosed       = ProcessError("database is closed")
	ErrDuplicateKey         = ExistsError("duplicate key")
	ErrDuplicateRecord      = ExistsError("record already exists")
	ErrFieldCount           = InvalidError("record field count is invalid")
	ErrIdentifierInvalid    = InvalidError("identifier must be 5 digits")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrNameInvalid          = InvalidError("name is invalid")
	ErrNilRecord            = InvalidError("nil record")
	ErrNoFactory            = InvalidError("no record factory")
	ErrNotConfirmed         = NotFoundError("deletion not confirmed")
	ErrQueueFull            = ProcessError("queue is full")
	ErrRecordNotFound       = NotFoundError("record not found")
	ErrReleaseBeforeAdmit   = InvalidError("release date is before admission date")
	ErrTimestampInvalid     = InvalidError("timestamp is invalid")
	ErrTreeFull             = ProcessError("tree is full")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
