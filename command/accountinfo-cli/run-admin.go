// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type adminReply struct {
	Account string `json:"account"`
	Admin   bool   `json:"admin"`
}

func runAddAdmin(c *cli.Context) error {
	return admin(c, true)
}

func runDisableAdmin(c *cli.Context) error {
	return admin(c, false)
}

func admin(c *cli.Context, add bool) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := checkAccount(c, m)
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

	if add {
		return client.AddAdmin(key, identity)
	}
	return client.DisableAdmin(key, identity)
}

func runIsAdmin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := checkAccount(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	flag, err := client.IsAdmin(identity)
	if nil != err {
		return err
	}

	printJson(m.w, adminReply{
		Account: identity.String(),
		Admin:   flag,
	})
	return nil
}

func runSetDepositAmount(c *cli.Context) error {

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

	return client.SetDepositAmount(key, amount)
}
