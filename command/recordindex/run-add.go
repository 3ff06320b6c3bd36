// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordindex/record"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	line := c.String("line")
	if "" == line {
		return ErrRequiredLine
	}

	p, err := record.Parse(line)
	if nil != err {
		return err
	}

	err = m.registry.Add(p)
	if nil != err {
		return err
	}
	m.modified = true

	if m.verbose {
		fmt.Fprint(m.w, p.Detail())
	} else {
		fmt.Fprintf(m.w, "added: %s\n", p.Brief())
	}
	return nil
}
