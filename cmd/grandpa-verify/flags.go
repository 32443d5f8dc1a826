// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"strings"

	"github.com/ChainSafe/grandpa-bridge/config"
	"github.com/ChainSafe/grandpa-bridge/internal/metrics"
	"github.com/ChainSafe/grandpa-bridge/internal/pprof"
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
		Value: "config.toml",
	}
	// LogFlag overrides the configured log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels trace, debug, info, warn, error and critical",
	}
	// LogFormatFlag overrides the configured log format
	LogFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "Log line format, console or json",
	}
)

// Init flags
var (
	// AuthoritiesFlag lists the development authorities of the generated configuration
	AuthoritiesFlag = cli.StringFlag{
		Name:  "authorities",
		Usage: "Comma separated development authorities, eg. --authorities=alice,bob,charlie",
		Value: strings.Join(config.DefaultDevAuthorities, ","),
	}
	// SetIDFlag is the authority set id of the generated configuration
	SetIDFlag = cli.Uint64Flag{
		Name:  "set-id",
		Usage: "Authority set id",
	}
	// ForceFlag overwrites an existing configuration file
	ForceFlag = cli.BoolFlag{
		Name:  "force",
		Usage: "Overwrite the configuration file if it exists",
	}
)

// Verification flags
var (
	// JustificationFlag is the file holding the hex encoded justification
	JustificationFlag = cli.StringFlag{
		Name:  "justification",
		Usage: "File holding the 0x prefixed hex SCALE encoded justification, - for stdin",
	}
	// TargetHashFlag overrides the configured target hash
	TargetHashFlag = cli.StringFlag{
		Name:  "target-hash",
		Usage: "Hash of the block the justification finalizes",
	}
	// TargetNumberFlag overrides the configured target number
	TargetNumberFlag = cli.Uint64Flag{
		Name:  "target-number",
		Usage: "Number of the block the justification finalizes",
	}
	// OutputFlag is the file the optimized justification is written to
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "File to write the optimized justification to, stdout by default",
	}
)

// Serve flags
var (
	// RPCAddressFlag overrides the configured JSON-RPC listening address
	RPCAddressFlag = cli.StringFlag{
		Name:  "rpc-address",
		Usage: "JSON-RPC server listening address",
	}
	// RPCExternalFlag accepts JSON-RPC requests from any host
	RPCExternalFlag = cli.BoolFlag{
		Name:  "rpc-external",
		Usage: "Accept JSON-RPC requests from hosts other than localhost",
	}
	// MetricsFlag enables the prometheus server
	MetricsFlag = cli.BoolFlag{
		Name:  "metrics",
		Usage: "Publish verification metrics to prometheus",
	}
	// MetricsAddressFlag overrides the configured prometheus listening address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Prometheus server listening address, " + metrics.DefaultAddress + " by default",
	}
	// PprofFlag enables the pprof server
	PprofFlag = cli.BoolFlag{
		Name:  "pprof",
		Usage: "Enable the pprof HTTP server",
	}
	// PprofAddressFlag is the pprof listening address
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprof-address",
		Usage: "pprof HTTP server listening address, if it is enabled",
		Value: pprof.DefaultAddress,
	}
)

// flag sets
var (
	// GlobalFlags are flags that are valid for use with the root command and all subcommands
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		LogFlag,
		LogFormatFlag,
	}

	// InitFlags are flags that are valid for use with the init subcommand
	InitFlags = append([]cli.Flag{
		AuthoritiesFlag,
		SetIDFlag,
		ForceFlag,
	}, GlobalFlags...)

	// VerifyFlags are flags that are valid for use with the verify subcommand
	VerifyFlags = append([]cli.Flag{
		JustificationFlag,
		TargetHashFlag,
		TargetNumberFlag,
	}, GlobalFlags...)

	// OptimizeFlags are flags that are valid for use with the optimize subcommand
	OptimizeFlags = append([]cli.Flag{
		JustificationFlag,
		TargetHashFlag,
		TargetNumberFlag,
		OutputFlag,
	}, GlobalFlags...)

	// ServeFlags are flags that are valid for use with the serve subcommand
	ServeFlags = append([]cli.Flag{
		RPCAddressFlag,
		RPCExternalFlag,
		MetricsFlag,
		MetricsAddressFlag,
		PprofFlag,
		PprofAddressFlag,
	}, GlobalFlags...)
)

// stringFlag returns the value of the flag set on the subcommand, or on
// the root command otherwise.
func stringFlag(ctx *cli.Context, name string) string {
	if ctx.IsSet(name) {
		return ctx.String(name)
	}
	if ctx.GlobalIsSet(name) {
		return ctx.GlobalString(name)
	}
	return ctx.String(name)
}
