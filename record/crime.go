// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/recordindex/fault"
)

// Crime - offence category
type Crime int

// crime values as stored in the line format
const (
	Arson Crime = iota
	Assault
	DUI
	Fraud
	Kidnapping
	Perjury
	PublicIndecency
	Theft
	Vandalism
	crimeLimit // one past the last valid crime
)

var crimeNames = [...]string{
	Arson:           "ARSON",
	Assault:         "ASSAULT",
	DUI:             "DUI",
	Fraud:           "FRAUD",
	Kidnapping:      "KIDNAPPING",
	Perjury:         "PERJURY",
	PublicIndecency: "PUBLIC_INDECENCY",
	Theft:           "THEFT",
	Vandalism:       "VANDALISM",
}

// String - upper case name, "OTHER" for an unknown value
func (c Crime) String() string {
	if !c.IsValid() {
		return "OTHER"
	}
	return crimeNames[c]
}

// IsValid - true for one of the defined crimes
func (c Crime) IsValid() bool {
	return c >= Arson && c < crimeLimit
}

// ParseCrime - convert a crime name (any case) or its number
func ParseCrime(s string) (Crime, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); nil == err {
		c := Crime(n)
		if !c.IsValid() {
			return 0, fault.ErrCrimeInvalid
		}
		return c, nil
	}
	name := strings.ReplaceAll(strings.ToUpper(s), " ", "_")
	for c, n := range crimeNames {
		if n == name {
			return Crime(c), nil
		}
	}
	return 0, fault.ErrCrimeInvalid
}

// Crimes - every defined crime in numeric order
func Crimes() []Crime {
	crimes := make([]Crime, 0, crimeLimit)
	for c := Arson; c < crimeLimit; c += 1 {
		crimes = append(crimes, c)
	}
	return crimes
}
