// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/recordindex/configuration"
	"github.com/bitmark-inc/recordindex/fault"
)

func writeConfig(t *testing.T, dir string, text string) string {
	name := filepath.Join(dir, "recordindex.conf")
	err := os.WriteFile(name, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return name
}

func TestGet(t *testing.T) {
	dir := t.TempDir()
	name := writeConfig(t, dir, `
local M = {}
M.data_directory = "."
M.import_file = "prisoners.txt"
M.maximum_records = 500
M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        registry = "debug",
    },
}
return M
`)

	c, err := configuration.Get(name)
	assert.Nil(t, err, "get")

	dir, _ = filepath.Abs(dir)
	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "records.leveldb"), c.Database, "database")
	assert.Equal(t, filepath.Join(dir, "prisoners.txt"), c.ImportFile, "import file")
	assert.Equal(t, "", c.ExportFile, "export file")
	assert.Equal(t, 500, c.MaximumRecords, "maximum")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "recordindex.log", c.Logging.File, "log file")
	assert.Equal(t, 4096, c.Logging.Size, "log size")
	assert.Equal(t, 3, c.Logging.Count, "log count")
	assert.Equal(t, "debug", c.Logging.Levels["registry"], "log level")

	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
	assert.True(t, info.IsDir(), "log directory is a directory")
}

func TestGetErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := configuration.Get(filepath.Join(dir, "missing.conf"))
	assert.Equal(t, fault.ErrConfigurationFile, err, "missing file")

	name := writeConfig(t, dir, `return { maximum_records = 1 }`)
	_, err = configuration.Get(name)
	assert.Equal(t, fault.ErrDataDirectory, err, "no data directory")

	name = writeConfig(t, dir, `return 42`)
	_, err = configuration.Get(name)
	assert.Equal(t, fault.ErrConfigurationFile, err, "not a table")

	name = writeConfig(t, dir, `this is not lua`)
	_, err = configuration.Get(name)
	assert.NotNil(t, err, "syntax error")

	name = writeConfig(t, dir, `return { data_directory = ".", logging = { file = "sub/x.log" } }`)
	_, err = configuration.Get(name)
	assert.NotNil(t, err, "log file path")
}
