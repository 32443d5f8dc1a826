// Copyright 2019 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// DotUpCodec is a JSON-RPC 2.0 codec accepting the substrate method
// naming, module_methodName, instead of Module.MethodName.
type DotUpCodec struct {
	json2Codec *json2.Codec
}

// NewDotUpCodec creates a new DotUpCodec
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{
		json2Codec: json2.NewCodec(),
	}
}

// NewRequest is called by the rpc server for every request
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &DotUpCodecRequest{
		CodecRequest: c.json2Codec.NewRequest(r),
	}
}

// DotUpCodecRequest decodes and encodes a single request
type DotUpCodecRequest struct {
	rpc.CodecRequest
}

// Method returns the decoded method name converted to the gorilla
// service.Method form.
func (c *DotUpCodecRequest) Method() (string, error) {
	method, err := c.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	service, name, found := strings.Cut(method, "_")
	if !found || service == "" || name == "" {
		return "", fmt.Errorf("rpc method %q is not formatted as module_methodName", method)
	}

	r, n := utf8.DecodeRuneInString(name)
	return service + "." + string(unicode.ToUpper(r)) + name[n:], nil
}
