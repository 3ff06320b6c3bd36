// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineError - a line that could not be parsed
type LineError struct {
	Line int
	Err  error
}

// Error - the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

// Unwrap - the underlying fault
func (e *LineError) Unwrap() error {
	return e.Err
}

// ReadFrom - parse every non-blank line
//
// bad lines are reported as *LineError and do not stop the read
func ReadFrom(r io.Reader) ([]*Prisoner, []error) {
	records := make([]*Prisoner, 0, 64)
	errs := []error(nil)

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line {
			continue
		}
		p, err := Parse(line)
		if nil != err {
			errs = append(errs, &LineError{Line: n, Err: err})
			continue
		}
		records = append(records, p)
	}
	if err := scanner.Err(); nil != err {
		errs = append(errs, err)
	}
	return records, errs
}

// WriteTo - one line per record
func WriteTo(w io.Writer, records []*Prisoner) error {
	b := bufio.NewWriter(w)
	for _, p := range records {
		if _, err := fmt.Fprintln(b, p.Line()); nil != err {
			return err
		}
	}
	return b.Flush()
}
