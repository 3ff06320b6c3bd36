// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordindex/record"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	m.registry.ListByID(func(p *record.Prisoner) {
		fmt.Fprintln(m.w, p.Brief())
	})
	return nil
}

func runNames(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if !m.registry.PrintNames(m.w, c.Bool("levels")) {
		fmt.Fprintln(m.w, "no records")
	}
	return nil
}

func runFilter(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	crime, err := checkCrime(c.String("crime"))
	if nil != err {
		return err
	}

	n := m.registry.FilterByCrime(crime, func(p *record.Prisoner) {
		fmt.Fprintln(m.w, p.Brief())
	})
	fmt.Fprintf(m.w, "%s: %d\n", crime, n)
	return nil
}

func runFirst(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printOne(m, m.registry.First())
}

func runLast(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return printOne(m, m.registry.Last())
}

func printOne(m *metadata, p *record.Prisoner) error {
	if nil == p {
		fmt.Fprintln(m.w, "no records")
		return nil
	}
	fmt.Fprint(m.w, p.Detail())
	return nil
}

func runStats(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	encoder := json.NewEncoder(m.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m.registry.Statistics())
}
