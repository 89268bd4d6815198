// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/command/accountinfo-cli/rpccalls"
)

func checkNetwork(network string) (string, error) {
	switch network {
	case "bitmark", "live":
		return "bitmark", nil
	case "testing", "test":
		return "testing", nil
	case "local", "regression":
		return "local", nil
	default:
		return "", ErrInvalidNetwork
	}
}

// returns true if the name is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

// identity name from the global flag or the configured default
func checkName(c *cli.Context, m *metadata) (string, error) {
	name := c.GlobalString("identity")
	if "" == name && nil != m.config {
		name = m.config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	return name, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}
	return description, nil
}

func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}
	return connect, nil
}

func checkURL(url string) (string, error) {
	if "" == url {
		return "", ErrRequiredURL
	}
	return url, nil
}

func checkAmount(amount uint64) (uint64, error) {
	if 0 == amount {
		return 0, ErrRequiredAmount
	}
	return amount, nil
}

// an identity name from the configuration or a base58 account
func checkAccount(c *cli.Context, m *metadata) (*account.Account, error) {
	name := c.String("account")
	if "" == name {
		return nil, ErrRequiredAccount
	}
	return m.config.Account(name)
}

// decrypt the private key of the selected identity
func privateKey(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := checkName(c, m)
	if nil != err {
		return nil, err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword()
		if nil != err {
			return nil, err
		}
	}

	return m.config.PrivateKey(password, name)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.config.Connect)
	}
	return rpccalls.NewClient(m.testnet, m.config.Connect, m.verbose, m.e)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}
