// Copyright 2019 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/ChainSafe/grandpa-bridge/dot/rpc/modules"
	"github.com/ChainSafe/grandpa-bridge/internal/httpserver"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa/justification"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// DefaultModules are the modules served when none is configured
var DefaultModules = []string{"grandpa", "rpc"}

// DefaultMaxRequestSize is the request body size limit used when none is configured
const DefaultMaxRequestSize int64 = 4 << 20

// ErrServerDoneBeforeReady is returned when the server exits before listening
var ErrServerDoneBeforeReady = errors.New("rpc server exited before being ready")

// HTTPServer gateway for RPC server
type HTTPServer struct {
	rpcServer    *rpc.Server
	handler      http.Handler
	serverConfig *HTTPServerConfig
	server       *httpserver.Server
	cancel       context.CancelFunc
	done         chan error
}

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	// Address is the listening address, such as 127.0.0.1:8545
	Address string
	// External accepts requests from hosts other than localhost
	External bool
	Modules  []string
	// MaxRequestSize bounds the request body size in bytes, and so the
	// size of the justifications accepted.
	MaxRequestSize int64
	// Context is the authority set justifications are verified against
	Context justification.VerificationContext
	RPCAPI  modules.RPCAPI
}

// NewHTTPServer creates a new http server and registers an associated rpc server
func NewHTTPServer(cfg *HTTPServerConfig) *HTTPServer {
	if cfg.RPCAPI == nil {
		cfg.RPCAPI = NewService()
	}
	if len(cfg.Modules) == 0 {
		cfg.Modules = DefaultModules
	}
	if cfg.MaxRequestSize <= 0 {
		cfg.MaxRequestSize = DefaultMaxRequestSize
	}

	server := &HTTPServer{
		rpcServer:    rpc.NewServer(),
		serverConfig: cfg,
	}

	server.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	server.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json;charset=UTF-8")

	validate := validator.New()
	validate.RegisterCustomTypeFunc(common.HashValidator, common.Hash{})
	server.rpcServer.RegisterValidateRequestFunc(rpcValidator(cfg, validate))

	server.RegisterModules(cfg.Modules)

	server.handler = http.MaxBytesHandler(server.rpcServer, cfg.MaxRequestSize)
	router := mux.NewRouter()
	router.Handle("/", server.handler)
	server.server = httpserver.New("rpc", cfg.Address, router, logger)
	return server
}

// RegisterModules registers the RPC services associated with the given API modules
func (h *HTTPServer) RegisterModules(mods []string) {
	for _, mod := range mods {
		logger.Debug("enabling rpc module " + mod)
		var srvc interface{}
		switch mod {
		case "grandpa":
			srvc = modules.NewGrandpaModule(h.serverConfig.Context)
		case "rpc":
			srvc = modules.NewRPCModule(h.serverConfig.RPCAPI)
		default:
			logger.Warn("unrecognised rpc module " + mod)
			continue
		}

		err := h.rpcServer.RegisterService(srvc, mod)
		if err != nil {
			logger.Warnf("failed to register rpc module %s: %s", mod, err)
			continue
		}

		h.serverConfig.RPCAPI.BuildMethodNames(srvc, mod)
	}
}

// Start starts the http server and returns once it listens.
func (h *HTTPServer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	ready := make(chan struct{})
	h.done = make(chan error)

	go h.server.Run(ctx, ready, h.done)

	select {
	case <-ready:
		logger.Infof("serving JSON-RPC at http://%s", h.server.GetAddress())
		return nil
	case err := <-h.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerDoneBeforeReady
	}
}

// Address returns the address the server listens on.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}

// Stop stops the server
func (h *HTTPServer) Stop() error {
	h.cancel()
	return <-h.done
}

// ServeHTTP serves a single JSON-RPC request, without starting the server.
func (h *HTTPServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.handler.ServeHTTP(w, r)
}
