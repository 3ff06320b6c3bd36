// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordindex/index"
	"github.com/bitmark-inc/recordindex/record"
)

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkID(c.String("id"))
	if nil != err {
		return err
	}

	confirm, done, err := confirmation(c.Bool("yes"), "Delete record? [y/n]: ")
	if nil != err {
		return err
	}
	defer done()

	p, err := m.registry.RemoveByID(id, confirm)
	if nil != err {
		return err
	}
	m.modified = true

	fmt.Fprintf(m.w, "deleted: %s\n", p.Brief())
	return nil
}

func runDeleteName(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	last, first, err := checkNames(c.String("last"), c.String("first"))
	if nil != err {
		return err
	}

	confirm, done, err := confirmation(c.Bool("yes"), "Delete this record? [y/n]: ")
	if nil != err {
		return err
	}
	defer done()

	p, err := m.registry.RemoveByName(last, first, confirm)
	if nil != err {
		return err
	}
	m.modified = true

	fmt.Fprintf(m.w, "deleted: %s\n", p.Brief())
	return nil
}

// either accept everything or ask on the controlling terminal
func confirmation(yes bool, prompt string) (index.ConfirmFunc, func(), error) {
	if yes {
		return nil, func() {}, nil
	}

	console, err := openConsole(prompt)
	if nil != err {
		return nil, nil, err
	}
	return func(p *record.Prisoner) bool {
		return console.confirm(p.Detail())
	}, console.Close, nil
}
