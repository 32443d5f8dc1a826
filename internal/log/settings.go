// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (s settings) {
	for _, option := range options {
		option(&s)
	}
	return s
}

// mergeWith sets values of the other settings on the receiving settings.
// Context key values are appended to existing keys.
func (s *settings) mergeWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	copyPtr(&s.level, other.level)
	copyPtr(&s.format, other.format)

	s.caller.mergeWith(other.caller)

	for _, otherKV := range other.context {
		merged := false
		for i := range s.context {
			if s.context[i].key == otherKV.key {
				s.context[i].values = append(s.context[i].values, otherKV.values...)
				merged = true
				break
			}
		}
		if !merged {
			values := make([]string, len(otherKV.values))
			copy(values, otherKV.values)
			s.context = append(s.context, contextKeyValues{key: otherKV.key, values: values})
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	defaultPtr(&s.level, Info)
	defaultPtr(&s.format, FormatConsole)

	s.caller.setDefaults()
}
