// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/recordindex/fault"
)

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto config using the gluamapper field tags
func ParseConfigurationFile(fileName string, config interface{}) error {
	if info, err := os.Stat(fileName); nil != err || info.IsDir() {
		return fault.ErrConfigurationFile
	}

	state := lua.NewState()
	defer state.Close()

	state.OpenLibs()

	// the script can locate files relative to itself via arg[0]
	arg := state.NewTable()
	arg.RawSetInt(0, lua.LString(fileName))
	state.SetGlobal("arg", arg)

	if err := state.DoFile(fileName); nil != err {
		return err
	}

	table, ok := state.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationFile
	}

	mapper := gluamapper.NewMapper(gluamapper.Option{
		NameFunc: keepName,
		TagName:  "gluamapper",
	})
	return mapper.Map(table, config)
}

// table keys already match the tags
func keepName(s string) string {
	return s
}
