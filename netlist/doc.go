// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package netlist reads a minimal line-oriented textual netlist and
// drives an aig.Net builder the way a parser is expected to (section
// 6 of the design): create_pi once per declared input, create_and per
// gate with inversions pre-applied to the operands, a name binding for
// every plain assignment, and create_po once per declared output, in
// declaration order. Undefined references are reported through a
// diag.Sink and degrade to the constant-0 signal rather than aborting
// the read: rejecting malformed input is the parser's job, not the
// graph's.
//
// Grammar, one statement per line, blank lines and lines starting
// with "#" ignored:
//
//	input NAME
//	NAME = and(OPERAND, OPERAND)
//	NAME = OPERAND
//	output OPERAND
//
// where OPERAND is NAME or ~NAME.
package netlist
