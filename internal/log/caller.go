// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerSettings selects the caller fields added to each line. A nil
// field is unset and takes the value of the parent logger.
type callerSettings struct {
	file *bool
	line *bool
	funC *bool
}

func copyPtr[T any](dst **T, src *T) {
	if src != nil {
		value := *src
		*dst = &value
	}
}

func defaultPtr[T any](ptr **T, value T) {
	if *ptr == nil {
		*ptr = &value
	}
}

func (c *callerSettings) mergeWith(other callerSettings) {
	copyPtr(&c.file, other.file)
	copyPtr(&c.line, other.line)
	copyPtr(&c.funC, other.funC)
}

func (c *callerSettings) setDefaults() {
	defaultPtr(&c.file, false)
	defaultPtr(&c.line, false)
	defaultPtr(&c.funC, false)
}

func (c callerSettings) enabled() bool {
	return *c.file || *c.line || *c.funC
}

// callerInfo is the location of the log call. Fields not selected by
// the caller settings are left empty.
type callerInfo struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
	Func string `json:"func,omitempty"`
}

// String returns the console form of the caller, such as
// verifier.go:L42:verifyJustification.
func (c callerInfo) String() string {
	fields := make([]string, 0, 3)
	if c.File != "" {
		fields = append(fields, c.File)
	}
	if c.Line != 0 {
		fields = append(fields, "L"+strconv.Itoa(c.Line))
	}
	if c.Func != "" {
		fields = append(fields, c.Func)
	}
	return strings.Join(fields, ":")
}

// getCaller returns the caller of the exported logging method, or nil
// if no caller field is enabled.
func getCaller(settings callerSettings) *callerInfo {
	if !settings.enabled() {
		return nil
	}

	// getCaller, Logger.log, then the exported logging method
	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return &callerInfo{File: "unknown"}
	}

	var info callerInfo
	if *settings.file {
		info.File = filepath.Base(file)
	}
	if *settings.line {
		info.Line = line
	}
	if *settings.funC {
		if details := runtime.FuncForPC(pc); details != nil {
			info.Func = strings.TrimLeft(filepath.Ext(details.Name()), ".")
		}
	}
	return &info
}
