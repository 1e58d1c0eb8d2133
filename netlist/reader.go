// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package netlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/aigcut/aigcut/aig"
	"github.com/aigcut/aigcut/diag"
	"github.com/aigcut/aigcut/z"
)

// Read parses r into net, reporting diagnostics to sink. It returns a
// non-nil error only for an underlying I/O failure; malformed lines
// and undefined references are reported through sink and do not stop
// the read (the graph must reject none of them).
func Read(r io.Reader, net *aig.Net, sink diag.Sink) error {
	rd := &reader{net: net, sink: sink, names: make(map[string]z.Signal)}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		rd.line(line, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "netlist: read")
	}
	return nil
}

type reader struct {
	net   *aig.Net
	sink  diag.Sink
	names map[string]z.Signal
}

func (rd *reader) report(line int, sev diag.Severity, msg string) {
	if rd.sink == nil {
		return
	}
	rd.sink.Report(diag.Diagnostic{Severity: sev, Message: msg, Line: line})
}

func (rd *reader) line(lineNo int, raw string) {
	text := strings.TrimSpace(raw)
	if text == "" || strings.HasPrefix(text, "#") {
		return
	}
	switch {
	case strings.HasPrefix(text, "input "):
		rd.input(lineNo, strings.TrimSpace(text[len("input "):]))
	case strings.HasPrefix(text, "output "):
		rd.output(lineNo, strings.TrimSpace(text[len("output "):]))
	default:
		rd.assignment(lineNo, text)
	}
}

func (rd *reader) input(lineNo int, name string) {
	if name == "" {
		rd.report(lineNo, diag.Error, "input declaration with no name")
		return
	}
	if _, exists := rd.names[name]; exists {
		rd.report(lineNo, diag.Warning, "redeclared input "+name)
	}
	rd.names[name] = rd.net.CreatePI()
}

func (rd *reader) output(lineNo int, operand string) {
	rd.net.CreatePO(rd.resolve(lineNo, operand))
}

func (rd *reader) assignment(lineNo int, text string) {
	eq := strings.Index(text, "=")
	if eq < 0 {
		rd.report(lineNo, diag.Error, "unrecognized statement: "+text)
		return
	}
	lhs := strings.TrimSpace(text[:eq])
	rhs := strings.TrimSpace(text[eq+1:])
	if lhs == "" {
		rd.report(lineNo, diag.Error, "assignment with no left-hand name")
		return
	}

	var sig z.Signal
	if strings.HasPrefix(rhs, "and(") && strings.HasSuffix(rhs, ")") {
		sig = rd.and(lineNo, rhs[len("and(") : len(rhs)-1])
	} else {
		sig = rd.resolve(lineNo, rhs)
	}

	if _, exists := rd.names[lhs]; exists {
		rd.report(lineNo, diag.Warning, "redefined name "+lhs)
	}
	rd.names[lhs] = sig
}

func (rd *reader) and(lineNo int, operands string) z.Signal {
	parts := strings.SplitN(operands, ",", 2)
	if len(parts) != 2 {
		rd.report(lineNo, diag.Error, "and() requires exactly two operands")
		return rd.net.GetConstant(false)
	}
	a := rd.resolve(lineNo, strings.TrimSpace(parts[0]))
	b := rd.resolve(lineNo, strings.TrimSpace(parts[1]))
	return rd.net.CreateAnd(a, b)
}

// resolve looks up operand, which may carry a leading "~" for
// negation. An unknown name is reported as an error diagnostic and
// substituted with constant-0 so the read can continue.
func (rd *reader) resolve(lineNo int, operand string) z.Signal {
	negate := strings.HasPrefix(operand, "~")
	name := strings.TrimPrefix(operand, "~")
	sig, ok := rd.names[name]
	if !ok {
		rd.report(lineNo, diag.Error, "undefined reference "+name)
		return rd.net.GetConstant(false)
	}
	return sig.Xor(negate)
}
