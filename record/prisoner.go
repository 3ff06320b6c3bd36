// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/bitmark-inc/recordindex/fault"
)

// limits on record fields
const (
	IDLength      = 5
	MaximumName   = 20
	MinimumCell   = 100
	MaximumCell   = 999
	fieldCount    = 7
	fieldSplitter = ";"
	nameSplitter  = ","
)

// Prisoner - one record
type Prisoner struct {
	ID        string    `json:"id"`
	LastName  string    `json:"lastName"`
	FirstName string    `json:"firstName"`
	Crime     Crime     `json:"crime"`
	Admitted  time.Time `json:"admitted"`
	Release   time.Time `json:"release"`
	CellBlock byte      `json:"cellBlock"`
	Cell      int       `json:"cell"`
}

// Parse - decode and validate one record line
func Parse(line string) (*Prisoner, error) {
	fields := strings.Split(strings.TrimSpace(line), fieldSplitter)
	if fieldCount != len(fields) {
		return nil, fault.ErrFieldCount
	}

	names := strings.SplitN(fields[1], nameSplitter, 2)
	if 2 != len(names) {
		return nil, fault.ErrNameInvalid
	}

	crime, err := ParseCrime(fields[2])
	if nil != err {
		return nil, err
	}

	admitted, err := strconv.ParseInt(fields[3], 10, 64)
	if nil != err {
		return nil, fault.ErrTimestampInvalid
	}
	release, err := strconv.ParseInt(fields[4], 10, 64)
	if nil != err {
		return nil, fault.ErrTimestampInvalid
	}

	if 1 != len(fields[5]) {
		return nil, fault.ErrCellBlockInvalid
	}
	block := fields[5][0]
	if block >= 'a' && block <= 'z' {
		block -= 'a' - 'A'
	}

	cell, err := strconv.Atoi(fields[6])
	if nil != err {
		return nil, fault.ErrCellNumberInvalid
	}

	p := &Prisoner{
		ID:        fields[0],
		LastName:  strings.TrimSpace(names[0]),
		FirstName: strings.TrimSpace(names[1]),
		Crime:     crime,
		Admitted:  time.Unix(admitted, 0).UTC(),
		Release:   time.Unix(release, 0).UTC(),
		CellBlock: block,
		Cell:      cell,
	}
	if err := p.Validate(); nil != err {
		return nil, err
	}
	return p, nil
}

// Line - encode in the record line format, without a newline
func (p *Prisoner) Line() string {
	return fmt.Sprintf("%s;%s,%s;%d;%d;%d;%c;%d",
		p.ID,
		p.LastName, p.FirstName,
		p.Crime,
		p.Admitted.Unix(),
		p.Release.Unix(),
		p.CellBlock,
		p.Cell,
	)
}

// Validate - check every field
func (p *Prisoner) Validate() error {
	if !ValidID(p.ID) {
		return fault.ErrIdentifierInvalid
	}
	if !validName(p.LastName) || !validName(p.FirstName) {
		return fault.ErrNameInvalid
	}
	if !p.Crime.IsValid() {
		return fault.ErrCrimeInvalid
	}
	if p.Release.Before(p.Admitted) {
		return fault.ErrReleaseBeforeAdmit
	}
	if p.CellBlock < 'A' || p.CellBlock > 'Z' {
		return fault.ErrCellBlockInvalid
	}
	if p.Cell < MinimumCell || p.Cell > MaximumCell {
		return fault.ErrCellNumberInvalid
	}
	return nil
}

// Sentence - time between admission and release
func (p *Prisoner) Sentence() time.Duration {
	return p.Release.Sub(p.Admitted)
}

// Brief - one line summary
func (p *Prisoner) Brief() string {
	return fmt.Sprintf("ID: %s  NAME: %s, %s", p.ID, p.LastName, p.FirstName)
}

// Detail - multi-line description
func (p *Prisoner) Detail() string {
	return fmt.Sprintf(
		"NAME:              %s, %s\n"+
			"ID:                %s\n"+
			"OFFENSE:           %s\n"+
			"ADMISSION:         %s\n"+
			"PROJECTED RELEASE: %s\n"+
			"CELL:              %c %d\n",
		p.LastName, p.FirstName,
		p.ID,
		p.Crime,
		p.Admitted.Format(time.ANSIC),
		p.Release.Format(time.ANSIC),
		p.CellBlock, p.Cell,
	)
}

// String - same as Brief
func (p *Prisoner) String() string {
	return p.Brief()
}

// ValidID - true for a five digit identifier
func ValidID(id string) bool {
	if IDLength != len(id) {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// letters with embedded hyphen, apostrophe or space
func validName(name string) bool {
	if "" == name || len(name) > MaximumName {
		return false
	}
	for i, c := range name {
		if unicode.IsLetter(c) {
			continue
		}
		if 0 == i || i == len(name)-1 || !strings.ContainsRune("-' ", c) {
			return false
		}
	}
	return true
}
