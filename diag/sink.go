// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

import (
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Diagnostic is one message raised by a producer (the netlist reader)
// at a given severity.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return "line " + strconv.Itoa(d.Line) + ": " + d.Severity.String() + ": " + d.Message
	}
	return d.Severity.String() + ": " + d.Message
}

// Sink receives diagnostics as they are raised. The graph builder
// never consults a Sink's return value: reporting is one-way.
type Sink interface {
	Report(Diagnostic)
}

// LogrusSink reports every diagnostic through a logrus.FieldLogger,
// mapping severity to the nearest logrus level. Fatal diagnostics are
// logged at error level rather than calling logrus's own Fatal, which
// would exit the process — producers decide for themselves whether a
// fatal diagnostic should abort.
type LogrusSink struct {
	Logger log.FieldLogger
}

// NewLogrusSink wraps logger, or the package-level standard logger if
// logger is nil.
func NewLogrusSink(logger log.FieldLogger) *LogrusSink {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogrusSink{Logger: logger}
}

func (s *LogrusSink) Report(d Diagnostic) {
	entry := s.Logger.WithField("line", d.Line)
	switch d.Severity {
	case Ignore:
	case Note:
		entry.Debug(d.Message)
	case Remark:
		entry.Info(d.Message)
	case Warning:
		entry.Warn(d.Message)
	case Error, Fatal:
		entry.Error(d.Message)
	}
}

// Collector accumulates diagnostics in memory instead of emitting
// them, for callers (tests, batch drivers) that want to inspect what
// was raised rather than stream it.
type Collector struct {
	Diagnostics []Diagnostic
}

func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// HasAtLeast reports whether any collected diagnostic is at least as
// severe as min.
func (c *Collector) HasAtLeast(min Severity) bool {
	for _, d := range c.Diagnostics {
		if d.Severity >= min {
			return true
		}
	}
	return false
}

// FilterSink drops diagnostics below Min before forwarding to Next.
type FilterSink struct {
	Next Sink
	Min  Severity
}

func (f *FilterSink) Report(d Diagnostic) {
	if d.Severity < f.Min {
		return
	}
	f.Next.Report(d)
}
