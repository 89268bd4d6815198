// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/accountinfod/ledger"
)

type purseReply struct {
	Purse ledger.Purse `json:"purse"`
}

func runCreatePurse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	amount, err := checkAmount(c.Uint64("amount"))
	if nil != err {
		return err
	}

	key, err := privateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	purse, err := client.CreatePurse(key, amount)
	if nil != err {
		return err
	}

	printJson(m.w, purseReply{Purse: purse})
	return nil
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var purse ledger.Purse
	if p := c.String("purse"); "" != p {
		parsed, err := ledger.ParsePurse(p)
		if nil != err {
			return err
		}
		purse = parsed
	} else {
		name, err := checkName(c, m)
		if nil != err {
			return err
		}
		a, err := m.config.Account(name)
		if nil != err {
			return err
		}
		purse = ledger.MainPurse(a)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(purse)
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}
