// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Status()
	if nil != err {
		return err
	}

	printJson(m.w, reply)
	return nil
}

type infoReply struct {
	Connect string      `json:"_connection"`
	Node    interface{} `json:"node"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	printJson(m.w, infoReply{
		Connect: m.config.Connect,
		Node:    reply,
	})
	return nil
}
