// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import "io"

// Option modifies the settings of a logger.
type Option func(s *settings)

// SetLevel sets the minimum level logged, Info by default.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCallerFile enables or disables the caller file name
// in each line. It is disabled by default.
func SetCallerFile(enabled bool) Option {
	return setCaller(func(c *callerSettings) { c.file = &enabled })
}

// SetCallerLine enables or disables the caller line number
// in each line. It is disabled by default.
func SetCallerLine(enabled bool) Option {
	return setCaller(func(c *callerSettings) { c.line = &enabled })
}

// SetCallerFunc enables or disables the caller function name
// in each line. It is disabled by default.
func SetCallerFunc(enabled bool) Option {
	return setCaller(func(c *callerSettings) { c.funC = &enabled })
}

func setCaller(set func(c *callerSettings)) Option {
	return func(s *settings) { set(&s.caller) }
}

// SetFormat sets the line format, FormatConsole by default.
func SetFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// SetWriter sets the destination of the lines, os.Stdout by default.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext appends a key value pair to the context printed with each
// line. A value for an existing key is appended to that key's values.
func AddContext(key, value string) Option {
	return func(s *settings) {
		for i := range s.context {
			if s.context[i].key == key {
				s.context[i].values = append(s.context[i].values, value)
				return
			}
		}
		newKV := contextKeyValues{key: key, values: []string{value}}
		s.context = append(s.context, newKV)
	}
}
