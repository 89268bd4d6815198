// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/accountinfod/ledger"
)

type urlReply struct {
	Account string       `json:"account"`
	URL     string       `json:"url,omitempty"`
	Purse   ledger.Purse `json:"purse,omitempty"`
}

func runSetURL(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	url, err := checkURL(c.String("url"))
	if nil != err {
		return err
	}

	purseText := c.String("purse")
	deposit := c.Bool("deposit")
	if "" != purseText && deposit {
		return ErrPurseAndDeposit
	}

	purse := ledger.Purse("")
	if "" != purseText {
		purse, err = ledger.ParsePurse(purseText)
		if nil != err {
			return err
		}
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

	// fund the deposit only when none is held yet
	if deposit {
		held, err := client.Deposit(key.Account())
		if nil != err {
			return err
		}
		if 0 == held {
			status, err := client.Status()
			if nil != err {
				return err
			}
			if status.DepositAmount > 0 {
				purse, err = client.CreatePurse(key, status.DepositAmount)
				if nil != err {
					return err
				}
				if m.verbose {
					fmt.Fprintf(m.e, "deposit purse: %s\n", purse)
				}
			}
		}
	}

	err = client.SetURL(key, url, purse)
	if nil != err {
		return err
	}

	printJson(m.w, urlReply{
		Account: key.Account().String(),
		URL:     url,
		Purse:   purse,
	})
	return nil
}

func runGetURL(c *cli.Context) error {

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

	url, err := client.GetURL(identity)
	if nil != err {
		return err
	}

	printJson(m.w, urlReply{
		Account: identity.String(),
		URL:     url,
	})
	return nil
}

func runDeleteURL(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := privateKey(c, m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return client.DeleteURL(key)
}

func runSetURLFor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	identity, err := checkAccount(c, m)
	if nil != err {
		return err
	}

	url, err := checkURL(c.String("url"))
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

	return client.SetURLForAccount(key, identity, url)
}

func runDeleteURLFor(c *cli.Context) error {

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

	return client.DeleteURLForAccount(key, identity)
}
