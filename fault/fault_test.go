// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrDuplicateKey, true, false, false, false},
		{fault.ErrTreeFull, false, false, false, true},
		{fault.ErrQueueFull, false, false, false, true},
		{fault.ErrRecordNotFound, false, false, true, false},
		{fault.ErrNilRecord, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestPanicfWithoutLogger(t *testing.T) {
	assert.PanicsWithValue(t, "abort, see last messages in log file", func() {
		fault.Panicf("rotation on balanced node: %d", 0)
	}, "Panicf should panic even when the log channel is not set up")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() {
		fault.PanicIfError("no error", nil)
	}, "nil error must not panic")
	assert.Panics(t, func() {
		fault.PanicIfError("with error", fault.ErrTreeFull)
	}, "non-nil error must panic")
}
