// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package z

import (
	"fmt"
	"testing"
)

func TestIndex(t *testing.T) {
	n := Index(33)
	pos := n.Pos()
	neg := n.Neg()
	if pos.IsComplemented() {
		t.Errorf("Pos() is complemented")
	}
	if !neg.IsComplemented() {
		t.Errorf("Neg() is not complemented")
	}
	if pos.Index() != n || neg.Index() != n {
		t.Errorf("generated signals not over same index")
	}
	if pos.Not() != neg {
		t.Errorf("pos/neg not negations of each other")
	}
	if fmt.Sprintf("%s", n) != fmt.Sprintf("n%d", uint32(n)) {
		t.Errorf("format.")
	}
}
