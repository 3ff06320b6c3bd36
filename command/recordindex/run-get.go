// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runGet(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	p, err := m.registry.Get(id)
	if nil != err {
		return err
	}

	fmt.Fprint(m.w, p.Detail())
	return nil
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	last, first, err := checkNames(c.String("last"), c.String("first"))
	if nil != err {
		return err
	}

	results := m.registry.SearchByName(last, first)
	if 0 == len(results) {
		fmt.Fprintf(m.w, "no records for: %s, %s\n", last, first)
		return nil
	}
	for i, p := range results {
		if i > 0 {
			fmt.Fprintln(m.w)
		}
		fmt.Fprint(m.w, p.Detail())
	}
	return nil
}
