// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag is the diagnostics sink used by the script package: an
// ordered log of informational, warning, and error entries
// accumulated while parsing or validating input, to be surfaced to a
// caller before (or instead of) acting on that input.
package diag

import (
	"fmt"
	"strings"
)

// Severity classifies a Log Entry.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Entry is a single diagnostic message.
type Entry struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Log accumulates Entries in the order they were recorded.
type Log struct {
	Entries []Entry `json:"entries"`
}

// Add appends an entry of the given severity.
func (l *Log) Add(sev Severity, format string, args ...interface{}) {
	l.Entries = append(l.Entries, Entry{Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// Info records an informational entry.
func (l *Log) Info(format string, args ...interface{}) { l.Add(Info, format, args...) }

// Warning records a warning entry.
func (l *Log) Warning(format string, args ...interface{}) { l.Add(Warning, format, args...) }

// Error records an error entry.
func (l *Log) Error(format string, args ...interface{}) { l.Add(Error, format, args...) }

// ContainsErrors reports whether any entry has Error severity.
func (l *Log) ContainsErrors() bool {
	for _, e := range l.Entries {
		if e.Severity == Error {
			return true
		}
	}
	return false
}

// String renders the log as one "severity: message" line per entry.
func (l *Log) String() string {
	var b strings.Builder
	for _, e := range l.Entries {
		b.WriteString(e.Severity.String())
		b.WriteString(": ")
		b.WriteString(e.Message)
		b.WriteByte('\n')
	}
	return b.String()
}
