// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package pprof

import (
	"net/http"
	"net/http/pprof"

	"github.com/ChainSafe/grandpa-bridge/internal/httpserver"
)

// NewServer creates the HTTP server exposing the runtime profiles
// under /debug/pprof/ at the given address.
func NewServer(address string, logger httpserver.Logger,
	options ...httpserver.Option) *httpserver.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/debug/pprof/", pprof.Index)
	handler.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	handler.HandleFunc("/debug/pprof/profile", pprof.Profile)
	handler.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	handler.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, profile := range []string{"block", "goroutine", "heap", "mutex", "threadcreate"} {
		handler.Handle("/debug/pprof/"+profile, pprof.Handler(profile))
	}
	return httpserver.New("pprof", address, handler, logger, options...)
}
