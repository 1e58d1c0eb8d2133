// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diag defines the six-level diagnostic severity taxonomy
// (ignore, note, remark, warning, error, fatal) that the netlist
// reader uses to report undefined references and other non-fatal
// input problems. The graph builder itself never consults a
// diagnostic's outcome; reporting is purely one-way.
package diag
