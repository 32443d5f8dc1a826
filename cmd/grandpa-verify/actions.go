// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ChainSafe/grandpa-bridge/config"
	"github.com/ChainSafe/grandpa-bridge/dot/rpc"
	"github.com/ChainSafe/grandpa-bridge/internal/metrics"
	"github.com/ChainSafe/grandpa-bridge/internal/pprof"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/urfave/cli"
)

var (
	// ErrConfigExists is returned by init when the configuration file exists
	ErrConfigExists = errors.New("configuration file already exists")
	// ErrInvalidJustification is returned by verify for a justification
	// that is not valid and optimal
	ErrInvalidJustification = errors.New("justification is not valid")
)

// initAction writes a development configuration file.
func initAction(ctx *cli.Context) error {
	path := stringFlag(ctx, ConfigFlag.Name)
	if !ctx.Bool(ForceFlag.Name) {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%w: %s, use --%s to overwrite it", ErrConfigExists, path, ForceFlag.Name)
		}
	}

	names := strings.Split(ctx.String(AuthoritiesFlag.Name), ",")
	for i := range names {
		names[i] = strings.TrimSpace(names[i])
	}

	cfg, err := config.Dev(ctx.Uint64(SetIDFlag.Name), names...)
	if err != nil {
		return err
	}

	err = config.Export(cfg, path)
	if err != nil {
		return err
	}

	logger.Infof("wrote configuration file %s with %d authorities and set id %d",
		path, len(cfg.Authorities.List), cfg.Authorities.SetID)
	return nil
}

// verifyAction strictly verifies a justification file.
func verifyAction(ctx *cli.Context) error {
	target, verificationCtx, decoded, err := verificationInput(ctx)
	if err != nil {
		return err
	}

	err = justification.VerifyJustification(target, verificationCtx, *decoded)
	if err != nil {
		var precommitErr *justification.PrecommitError
		if errors.As(err, &precommitErr) {
			logger.Debugf("offending precommit: %s", decoded.Commit.Precommits[precommitErr.Index])
		}
		return fmt.Errorf("%w for block %s: %w", ErrInvalidJustification, target, err)
	}

	logger.Infof("justification of round %d for block %s is valid: %d precommits and %d ancestry headers",
		decoded.Round, target, len(decoded.Commit.Precommits), len(decoded.VotesAncestries))
	return nil
}

// optimizeAction writes the optimized justification as hex, to the output
// file or to the application writer.
func optimizeAction(ctx *cli.Context) error {
	target, verificationCtx, decoded, err := verificationInput(ctx)
	if err != nil {
		return err
	}

	report, err := justification.VerifyAndOptimizeJustification(target, verificationCtx, decoded)
	if err != nil {
		return fmt.Errorf("%w for block %s: %w", ErrInvalidJustification, target, err)
	}
	if reasons := report.Report(); reasons != nil {
		logger.Debug(reasons.Error())
	}
	logger.Infof("dropped %d precommits, %d duplicate and %d unused ancestry headers",
		len(report.DroppedPrecommits), len(report.DuplicateAncestries), len(report.RedundantAncestries))

	encoded, err := decoded.Bytes()
	if err != nil {
		return fmt.Errorf("encoding optimized justification: %w", err)
	}
	output := common.BytesToHex(encoded) + "\n"

	path := ctx.String(OutputFlag.Name)
	if path == "" {
		_, err = io.WriteString(ctx.App.Writer, output)
		return err
	}
	return os.WriteFile(path, []byte(output), 0600)
}

// serveAction serves the JSON-RPC API until an interrupt or termination
// signal is received.
func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	var pprofSettings *pprof.Settings
	if ctx.Bool(PprofFlag.Name) {
		pprofSettings = &pprof.Settings{ListeningAddress: ctx.String(PprofAddressFlag.Name)}
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(signalCtx, cfg, pprofSettings)
}

type service interface {
	Start() error
	Stop() error
}

// serve starts the configured services, blocks until the context is
// canceled and stops them in reverse order.
func serve(ctx context.Context, cfg *config.Config, pprofSettings *pprof.Settings) (err error) {
	verificationContext, err := cfg.VerificationContext()
	if err != nil {
		return err
	}

	services := []service{
		rpc.NewHTTPServer(&rpc.HTTPServerConfig{
			Address:        cfg.RPC.Address,
			External:       cfg.RPC.External,
			Modules:        cfg.RPC.Modules,
			MaxRequestSize: cfg.RPC.MaxRequestSize,
			Context:        verificationContext,
		}),
	}
	if cfg.Metrics.Enabled {
		services = append(services, metrics.NewServer(cfg.Metrics.Address, nil))
	}
	if pprofSettings != nil {
		services = append(services, pprof.NewService(*pprofSettings, logger))
	}

	started := 0
	defer func() {
		for i := started - 1; i >= 0; i-- {
			stopErr := services[i].Stop()
			if stopErr != nil && err == nil {
				err = stopErr
			}
		}
	}()

	for _, s := range services {
		err = s.Start()
		if err != nil {
			return err
		}
		started++
	}

	logger.Infof("verifying justifications against authority set %d of %d voters",
		cfg.Authorities.SetID, verificationContext.VoterSet.Len())
	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
