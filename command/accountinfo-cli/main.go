// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/accountinfod/command/accountinfo-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "accountinfo-cli"
	app.Usage = "manage urls published in an accountinfod registry"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	accountFlag := cli.StringFlag{
		Name:  "account, a",
		Value: "",
		Usage: "*identity name or base58 `ACCOUNT`",
	}
	amountFlag := cli.Uint64Flag{
		Name:  "amount, m",
		Value: 0,
		Usage: "*token `AMOUNT`",
	}
	urlFlag := cli.StringFlag{
		Name:  "url, l",
		Value: "",
		Usage: "*http or https `URL`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "testing",
			Usage: " connect to accountinfod `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "setup",
			Usage:     "initialise accountinfo-cli configuration",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*accountinfod host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: " use existing base58 private `KEY`",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "+use existing base58 private `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, N",
					Usage: "+generate a new private key",
				},
				cli.StringFlag{
					Name:  "account, a",
					Value: "",
					Usage: "+receive only base58 `ACCOUNT`",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "generate",
			Usage:  "generate a private key, will not store in config file",
			Action: runGenerate,
		},
		{
			Name:   "list",
			Usage:  "list identities in the config file",
			Action: runList,
		},
		{
			Name:      "set-url",
			Usage:     "publish the url of the current identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				urlFlag,
				cli.StringFlag{
					Name:  "purse, f",
					Value: "",
					Usage: " funding `PURSE` for the deposit",
				},
				cli.BoolFlag{
					Name:  "deposit, D",
					Usage: " create a purse holding the deposit amount and fund from it",
				},
			},
			Action: runSetURL,
		},
		{
			Name:      "get-url",
			Usage:     "display the url of an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runGetURL,
		},
		{
			Name:   "delete-url",
			Usage:  "delete the url of the current identity and refund its deposit",
			Action: runDeleteURL,
		},
		{
			Name:      "set-url-for",
			Usage:     "admin: set the url of another account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag, urlFlag},
			Action:    runSetURLFor,
		},
		{
			Name:      "delete-url-for",
			Usage:     "admin: delete the url of another account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runDeleteURLFor,
		},
		{
			Name:      "add-admin",
			Usage:     "admin: grant admin rights to an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runAddAdmin,
		},
		{
			Name:      "disable-admin",
			Usage:     "admin: revoke admin rights from an account",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runDisableAdmin,
		},
		{
			Name:      "is-admin",
			Usage:     "check if an account is an admin",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{accountFlag},
			Action:    runIsAdmin,
		},
		{
			Name:      "set-deposit-amount",
			Usage:     "admin: set the deposit required from new registrations",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{amountFlag},
			Action:    runSetDepositAmount,
		},
		{
			Name:      "create-purse",
			Usage:     "move tokens from the main purse into a new purse",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{amountFlag},
			Action:    runCreatePurse,
		},
		{
			Name:      "balance",
			Usage:     "display the balance of a purse",
			ArgsUsage: "\n   (default is the main purse of the identity)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "purse, f",
					Value: "",
					Usage: " `PURSE` name",
				},
			},
			Action: runBalance,
		},
		{
			Name:   "status",
			Usage:  "display registry settings and admins",
			Action: runStatus,
		},
		{
			Name:   "info",
			Usage:  "display accountinfod node information",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display accountinfo-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		if "version" == command || "help" == command || "" == command {
			return nil
		}

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, network+"-"+app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				testnet: network != "bitmark",
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Load(file)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			testnet: config.TestNet,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || !m.save {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "updating config file: %s\n", m.file)
		}
		return configuration.Save(m.file, m.config)
	}

	return app
}
