// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"os"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/urfave/cli"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "cmd"))

var (
	app = cli.NewApp()

	initCommand = cli.Command{
		Action:    initAction,
		Name:      "init",
		Usage:     "Write a development configuration file",
		ArgsUsage: "",
		Flags:     InitFlags,
		Description: "The init command writes a configuration file holding development authorities.\n" +
			"\tUsage: grandpa-verify init --config config.toml --authorities alice,bob,charlie --set-id 0",
	}
	verifyCommand = cli.Command{
		Action:    verifyAction,
		Name:      "verify",
		Usage:     "Verify a justification against the configured authority set",
		ArgsUsage: "",
		Flags:     VerifyFlags,
		Description: "The verify command exits with a non zero status if the justification is not\n" +
			"\tvalid and optimal for the target block.\n" +
			"\tUsage: grandpa-verify verify --config config.toml --justification justification.hex",
	}
	optimizeCommand = cli.Command{
		Action:    optimizeAction,
		Name:      "optimize",
		Usage:     "Drop the superfluous data of a justification",
		ArgsUsage: "",
		Flags:     OptimizeFlags,
		Description: "The optimize command writes the justification without its invalid, redundant\n" +
			"\tand unrelated precommits and without its unused ancestry headers.\n" +
			"\tUsage: grandpa-verify optimize --justification justification.hex --output optimized.hex",
	}
	serveCommand = cli.Command{
		Action:    serveAction,
		Name:      "serve",
		Usage:     "Serve justification verification over JSON-RPC",
		ArgsUsage: "",
		Flags:     ServeFlags,
		Description: "The serve command serves the grandpa JSON-RPC module until interrupted.\n" +
			"\tUsage: grandpa-verify serve --config config.toml --metrics",
	}
)

func init() {
	app.Name = "grandpa-verify"
	app.Usage = "GRANDPA justification verifier"
	app.Copyright = "Copyright 2023 ChainSafe Systems Authors"
	app.Author = "ChainSafe Systems 2023"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		initCommand,
		verifyCommand,
		optimizeCommand,
		serveCommand,
	}
	app.Flags = GlobalFlags
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
