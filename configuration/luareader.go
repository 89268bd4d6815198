// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/accountinfod/fault"
)

// ParseConfigurationFile - read and execute a Lua file and assign
// the returned table to a configuration structure
func ParseConfigurationFile(fileName string, config interface{}) error {
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	if L.GetTop() < 1 {
		return fault.ConfigurationIsMissing
	}
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.ConfigurationIsMissing
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}
