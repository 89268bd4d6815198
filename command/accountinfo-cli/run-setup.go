// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/command/accountinfo-cli/configuration"
)

type generateReply struct {
	Account    string `json:"account"`
	PrivateKey string `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	printJson(m.w, generateReply{
		Account:    key.Account().String(),
		PrivateKey: key.String(),
	})
	return nil
}

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	connect, err := checkConnect(c.String("connect"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	key, err := keyFromOption(c.String("key"), true, m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "testnet: %t\n", m.testnet)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptNewPassword()
		if nil != err {
			return err
		}
	}

	config := configuration.New(m.testnet, connect)
	err = config.AddIdentity(name, description, key, password)
	if nil != err {
		return err
	}

	m.config = config
	m.save = true
	return nil
}

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.GlobalString("identity")
	if "" == name {
		return ErrRequiredIdentity
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	keyText := c.String("key")
	generate := c.Bool("new")
	acc := c.String("account")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
		fmt.Fprintf(m.e, "account: %s\n", acc)
		fmt.Fprintf(m.e, "new: %t\n", generate)
	}

	switch {
	case "" == acc && ("" == keyText) == generate:
		key, err := keyFromOption(keyText, generate, m.testnet)
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		err = m.config.AddIdentity(name, description, key, password)
		if nil != err {
			return err
		}

	case "" != acc && "" == keyText && !generate:
		err = m.config.AddReceiveOnlyIdentity(name, description, acc)
		if nil != err {
			return err
		}

	default:
		return ErrIncompatibleOptions
	}

	// require configuration update
	m.save = true
	return nil
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	printJson(m.w, m.config.Info())
	return nil
}

// decode a supplied key or create a fresh one
func keyFromOption(keyText string, generate bool, testnet bool) (*account.PrivateKey, error) {
	if "" == keyText {
		if !generate {
			return nil, ErrIncompatibleOptions
		}
		return account.NewPrivateKey(testnet)
	}
	return account.PrivateKeyFromBase58(keyText)
}
