// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/ChainSafe/grandpa-bridge/config"
	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/urfave/cli"
)

var (
	// ErrNoJustification is returned when no justification file is given
	ErrNoJustification = errors.New("no justification file given")
	// ErrTargetNumberOverflow is returned for a target number above the block number range
	ErrTargetNumberOverflow = errors.New("target number overflows a block number")
)

// stdin is read when the justification file is "-"
var stdin io.Reader = os.Stdin

// setupLogger patches the global logger with the configured level and format.
func setupLogger(cfg *config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	format, err := cfg.LogFormat()
	if err != nil {
		return err
	}

	log.Patch(
		log.SetFormat(format),
		log.SetLevel(level),
	)
	return nil
}

// loadConfig loads the configuration file, applies the command line
// overrides and sets up the logger.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(stringFlag(ctx, ConfigFlag.Name))
	if err != nil {
		return nil, err
	}

	if level := stringFlag(ctx, LogFlag.Name); level != "" {
		cfg.Log.Level = level
	}
	if format := stringFlag(ctx, LogFormatFlag.Name); format != "" {
		cfg.Log.Format = format
	}

	if ctx.IsSet(TargetHashFlag.Name) {
		cfg.Target.Hash = ctx.String(TargetHashFlag.Name)
	}
	if ctx.IsSet(TargetNumberFlag.Name) {
		number := ctx.Uint64(TargetNumberFlag.Name)
		if number > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %d", ErrTargetNumberOverflow, number)
		}
		cfg.Target.Number = uint32(number)
	}

	if ctx.IsSet(RPCAddressFlag.Name) {
		cfg.RPC.Address = ctx.String(RPCAddressFlag.Name)
	}
	if ctx.Bool(RPCExternalFlag.Name) {
		cfg.RPC.External = true
	}
	if ctx.Bool(MetricsFlag.Name) {
		cfg.Metrics.Enabled = true
	}
	if ctx.IsSet(MetricsAddressFlag.Name) {
		cfg.Metrics.Address = ctx.String(MetricsAddressFlag.Name)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	err = setupLogger(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// readJustification reads and decodes the hex encoded justification
// held in the file at path, or in stdin if path is "-".
func readJustification(path string) (*justification.GrandpaJustification[*types.Header], error) {
	var (
		raw []byte
		err error
	)
	switch path {
	case "":
		return nil, ErrNoJustification
	case "-":
		raw, err = io.ReadAll(stdin)
	default:
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading justification: %w", err)
	}

	encoded, err := common.HexToBytes(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("decoding justification hex: %w", err)
	}

	return justification.DecodeJustification(encoded)
}

// verificationInput loads everything a verification needs from the
// command line context.
func verificationInput(ctx *cli.Context) (
	target types.HeaderID,
	context justification.VerificationContext,
	decoded *justification.GrandpaJustification[*types.Header],
	err error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return target, context, nil, err
	}

	target, err = cfg.TargetID()
	if err != nil {
		return target, context, nil, err
	}

	context, err = cfg.VerificationContext()
	if err != nil {
		return target, context, nil, err
	}

	decoded, err = readJustification(ctx.String(JustificationFlag.Name))
	if err != nil {
		return target, context, nil, err
	}
	return target, context, decoded, nil
}
