// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/rpc/v2"
	"github.com/jpillora/ipfilter"
)

var (
	errParseIP                = errors.New("unable to parse IP")
	errExternalRequestRefused = errors.New("external HTTP request refused")
)

// LocalhostFilter creates a ipfilter object for localhost
func LocalhostFilter() *ipfilter.IPFilter {
	return ipfilter.New(ipfilter.Options{
		BlockByDefault: true,
		AllowedIPs:     []string{"127.0.0.1", "::1"},
	})
}

// LocalRequestOnly refuses requests not coming from localhost
func LocalRequestOnly(r *rpc.RequestInfo, _ interface{}) error {
	ip, _, err := net.SplitHostPort(r.Request.RemoteAddr)
	if err != nil {
		return fmt.Errorf("%w: %s", errParseIP, r.Request.RemoteAddr)
	}

	if LocalhostFilter().Allowed(ip) {
		return nil
	}
	return fmt.Errorf("%w: from %s", errExternalRequestRefused, ip)
}

func snakeCaseFormat(method string) (string, error) {
	service, funcName, found := strings.Cut(method, ".")
	if !found || funcName == "" {
		return "", fmt.Errorf("invalid rpc method format %s, should be 'module.FunctionName'", method)
	}

	funcName = strings.ToLower(funcName[:1]) + funcName[1:]
	return service + "_" + funcName, nil
}

func rpcValidator(cfg *HTTPServerConfig, validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		rpcmethod, err := snakeCaseFormat(r.Method)
		if err != nil {
			return err
		}
		logger.Tracef("serving %s for %s", rpcmethod, r.Request.RemoteAddr)

		err = validate.Struct(v)
		if err != nil {
			return err
		}

		if !cfg.External {
			return LocalRequestOnly(r, v)
		}

		return nil
	}
}
