// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/bitmark-inc/accountinfod/fault"
)

const minimumPasswordLength = 8

// read a line without echo from the controlling terminal
func readPassword(prompt string) (string, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if nil != err {
		return "", err
	}
	defer tty.Close()

	fd := int(tty.Fd())
	oldState, err := terminal.MakeRaw(fd)
	if nil != err {
		return "", err
	}
	defer terminal.Restore(fd, oldState)

	console := terminal.NewTerminal(tty, "")
	return console.ReadPassword(prompt)
}

func promptPassword() (string, error) {
	return readPassword("password: ")
}

func promptNewPassword() (string, error) {
	password, err := readPassword("Set identity password (length >= 8): ")
	if nil != err {
		return "", err
	}

	if len(password) < minimumPasswordLength {
		return "", ErrPasswordLength
	}

	verify, err := readPassword("Verify password: ")
	if nil != err {
		return "", err
	}

	if password != verify {
		return "", fault.PasswordMismatch
	}

	return password, nil
}
