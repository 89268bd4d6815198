// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/callstack"
	"github.com/bitmark-inc/accountinfod/contract"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "install", "status", "get-url":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  install                             - install the registry using the registry section\n")
		fmt.Printf("                                        of the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  status                              - display admins, deposit and burn settings\n")
		fmt.Printf("\n")

		fmt.Printf("  get-url ACCOUNT                     - display the url registered for an account\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the registry storage is open so these commands can access and/or
// change it
func processDataCommand(log *logger.L, arguments []string, options *Configuration, registry contract.Registry) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "install":
		deployer, c, err := options.install()
		if nil != err {
			exitwithstatus.Message("install error: %s", err)
		}
		err = registry.Install(callstack.New(deployer, contract.Name), c)
		if nil != err {
			exitwithstatus.Message("install error: %s", err)
		}
		log.Infof("installed by: %s", deployer)
		fmt.Printf("installed by: %s\n", deployer)

	case "status":
		status, err := registry.Status()
		if nil != err {
			exitwithstatus.Message("status error: %s", err)
		}
		printJSON(status)

	case "get-url":
		if len(arguments) < 1 {
			exitwithstatus.Message("missing account argument")
		}
		identity, err := account.FromBase58(arguments[0])
		if nil != err {
			exitwithstatus.Message("account: %q error: %s", arguments[0], err)
		}
		url, err := registry.GetURL(identity)
		if nil != err {
			exitwithstatus.Message("get url error: %s", err)
		}
		fmt.Printf("%s\n", url)

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// print an indented JSON form of a value to stdout
func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}
