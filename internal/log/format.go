// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Format is the format of the log lines.
type Format uint8

const (
	// FormatConsole is the console format, with a coloured level.
	FormatConsole Format = iota
	// FormatJSON writes each log line as a JSON object.
	FormatJSON
)

// ErrFormatNotRecognised is returned by ParseFormat for an unknown format.
var ErrFormatNotRecognised = errors.New("format is not recognised")

// ParseFormat parses "console" or "json" into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "console", "":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrFormatNotRecognised, s)
	}
}

type jsonLine struct {
	Time    string              `json:"time"`
	Level   string              `json:"level"`
	Message string              `json:"message"`
	Caller  *callerInfo         `json:"caller,omitempty"`
	Context map[string][]string `json:"context,omitempty"`
}

func formatLine(format Format, now time.Time, level Level, message string,
	caller *callerInfo, context []contextKeyValues) string {
	if format == FormatJSON {
		line := jsonLine{
			Time:    now.Format(time.RFC3339),
			Level:   level.String(),
			Message: message,
			Caller:  caller,
		}
		if len(context) > 0 {
			line.Context = make(map[string][]string, len(context))
			for _, kvs := range context {
				line.Context[kvs.key] = kvs.values
			}
		}
		b, err := json.Marshal(line)
		if err != nil {
			return fmt.Sprintf("{\"error\":%q}", err)
		}
		return string(b)
	}

	line := now.Format(time.RFC3339) + " " + level.ColouredString() + " " + message
	if caller != nil {
		line += "\t" + caller.String()
	}

	if len(context) > 0 {
		keyValues := make([]string, len(context))
		for i, kvs := range context {
			keyValues[i] = kvs.key + "=" + strings.Join(kvs.values, ",")
		}
		line += "\t" + strings.Join(keyValues, " ")
	}
	return line
}
