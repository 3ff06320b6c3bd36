// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/record"
)

var (
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredCrime      = fault.InvalidError("crime is required")
	ErrRequiredFileName   = fault.InvalidError("file name is required")
	ErrRequiredFirstName  = fault.InvalidError("first name is required")
	ErrRequiredID         = fault.InvalidError("id is required")
	ErrRequiredLastName   = fault.InvalidError("last name is required")
	ErrRequiredLine       = fault.InvalidError("record line is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// check for non-blank file name
func checkFileName(fileName string) (string, error) {
	if "" == fileName {
		return "", ErrRequiredFileName
	}

	return os.ExpandEnv(fileName), nil
}

// id is required and must be five digits
func checkID(id string) (string, error) {
	if "" == id {
		return "", ErrRequiredID
	}
	if !record.ValidID(id) {
		return "", fault.ErrIdentifierInvalid
	}
	return id, nil
}

// both names are required
func checkNames(last string, first string) (string, string, error) {
	if "" == last {
		return "", "", ErrRequiredLastName
	}
	if "" == first {
		return "", "", ErrRequiredFirstName
	}
	return last, first, nil
}

// crime is required, either a name or its number
func checkCrime(crime string) (record.Crime, error) {
	if "" == crime {
		return 0, ErrRequiredCrime
	}
	return record.ParseCrime(crime)
}
