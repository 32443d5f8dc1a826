// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"
)

// RPCModule is a RPC module providing access to RPC methods
type RPCModule struct {
	rpcAPI RPCAPI
}

// MethodsResponse struct representing methods
type MethodsResponse struct {
	Version int      `json:"version"`
	Methods []string `json:"methods"`
}

// NewRPCModule creates a new RPC api module
func NewRPCModule(rpcapi RPCAPI) *RPCModule {
	return &RPCModule{
		rpcAPI: rpcapi,
	}
}

// Methods returns the names of the supported RPC methods
func (rm *RPCModule) Methods(_ *http.Request, _ *EmptyRequest, res *MethodsResponse) error {
	res.Version = 1
	res.Methods = rm.rpcAPI.Methods()
	return nil
}
