// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strconv"
	"strings"
)

// CompareID - order by numeric identifier
func CompareID(a *Prisoner, b *Prisoner) int {
	x, errA := strconv.Atoi(a.ID)
	y, errB := strconv.Atoi(b.ID)
	if nil != errA || nil != errB {
		return strings.Compare(a.ID, b.ID)
	}
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	default:
		return 0
	}
}

// CompareName - order by last name then first name ignoring case
func CompareName(a *Prisoner, b *Prisoner) int {
	if c := compareFold(a.LastName, b.LastName); 0 != c {
		return c
	}
	return compareFold(a.FirstName, b.FirstName)
}

// MatchCrime - true if record has the same crime as target
func MatchCrime(record *Prisoner, target *Prisoner) bool {
	return record.Crime == target.Crime
}

// KeyByID - search key for CompareID
func KeyByID(id string) *Prisoner {
	return &Prisoner{
		ID: id,
	}
}

// KeyByName - search key for CompareName
func KeyByName(last string, first string) *Prisoner {
	return &Prisoner{
		LastName:  last,
		FirstName: first,
	}
}

// KeyByCrime - filter target for MatchCrime
func KeyByCrime(crime Crime) *Prisoner {
	return &Prisoner{
		Crime: crime,
	}
}

func compareFold(a string, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
