// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diag

// Severity classifies a diagnostic raised while reading a netlist.
// The graph builder never rejects input on the strength of a
// diagnostic alone: undefined-signal handling is the parser's
// concern, and the builder only records what the sink is told.
type Severity uint32

const (
	Ignore Severity = iota
	Note
	Remark
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case Note:
		return "note"
	case Remark:
		return "remark"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Fatal:
		return "fatal"
	default:
		return "unknown severity"
	}
}

// ParseSeverity looks up a severity by its String() name.
func ParseSeverity(s string) (Severity, bool) {
	for sev := Ignore; sev <= Fatal; sev++ {
		if sev.String() == s {
			return sev, true
		}
	}
	return 0, false
}
