// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z

import "fmt"

// Index identifies a node in an And-Inverter Graph. Index 0 is
// reserved for the constant-0 node; indices 1..K are the K primary
// inputs, and indices above K are AND nodes.
type Index uint32

func (n Index) String() string {
	return fmt.Sprintf("n%d", uint32(n))
}

// Pos returns the uncomplemented Signal referring to n.
func (n Index) Pos() Signal {
	return Signal(n << 1)
}

// Neg returns the complemented Signal referring to n.
func (n Index) Neg() Signal {
	return Signal((n << 1) | 1)
}
