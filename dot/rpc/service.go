// Copyright 2019 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Service keeps the names of the methods served over RPC
type Service struct {
	rpcMethods []string
}

// NewService creates a new Service
func NewService() *Service {
	return &Service{rpcMethods: []string{}}
}

// Methods returns the names of the methods served over RPC
func (s *Service) Methods() []string {
	return s.rpcMethods
}

var (
	typeOfError   = reflect.TypeOf((*error)(nil)).Elem()
	typeOfRequest = reflect.TypeOf((*http.Request)(nil)).Elem()
)

// BuildMethodNames adds the name of every RPC method of the receiver,
// as module_methodName, to the methods of the service.
func (s *Service) BuildMethodNames(rcvr interface{}, name string) {
	rcvrType := reflect.TypeOf(rcvr)
	for i := 0; i < rcvrType.NumMethod(); i++ {
		method := rcvrType.Method(i)
		mtype := method.Type

		// receiver, *http.Request, *args and *reply
		if mtype.NumIn() != 4 {
			continue
		}

		reqType := mtype.In(1)
		if reqType.Kind() != reflect.Ptr || reqType.Elem() != typeOfRequest {
			continue
		}

		if mtype.In(2).Kind() != reflect.Ptr || mtype.In(3).Kind() != reflect.Ptr {
			continue
		}

		if mtype.NumOut() != 1 || mtype.Out(0) != typeOfError {
			continue
		}

		r, n := utf8.DecodeRuneInString(method.Name)
		s.rpcMethods = append(s.rpcMethods, name+"_"+string(unicode.ToLower(r))+method.Name[n:])
	}
}
