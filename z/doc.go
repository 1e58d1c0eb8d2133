// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the node and signal types shared by the graph
// and cut packages.
//
// A node Index and a Signal are both represented as uint32s. The LSB
// of a Signal indicates whether it carries an inversion relative to
// the node it names.
//
// As with the variable/literal pairing common in SAT solvers, this
// representation is convenient for data structures indexed by node or
// signal.
package z
