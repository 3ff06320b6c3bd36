// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func runImport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.Args().First())
	if nil != err {
		return err
	}

	return importFile(m, fileName)
}

func runExport(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().First()
	if "" == fileName {
		return m.registry.Export(m.w)
	}

	return exportFile(m, os.ExpandEnv(fileName))
}

// add every valid record of a file, reporting the rejected lines
func importFile(m *metadata, fileName string) error {
	f, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	added, errs := m.registry.Import(f)
	if added > 0 {
		m.modified = true
	}
	for _, err := range errs {
		fmt.Fprintf(m.e, "%s: %s\n", fileName, err)
	}
	fmt.Fprintf(m.w, "imported: %d  rejected: %d\n", added, len(errs))
	return nil
}

// replace a file with all records, via a temporary file
func exportFile(m *metadata, fileName string) error {
	temporary := fileName + ".new"
	f, err := os.Create(temporary)
	if nil != err {
		return err
	}

	err = m.registry.Export(f)
	if e := f.Close(); nil == err {
		err = e
	}
	if nil != err {
		os.Remove(temporary)
		return err
	}
	m.log.Infof("export: %s", fileName)
	return os.Rename(temporary, fileName)
}
