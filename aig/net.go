// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aig

import (
	"math"

	"github.com/aigcut/aigcut/z"
)

// node is a single entry in the graph: two fanin signals, a reference
// count, and an atomic mark word. Primary inputs and the constant node
// both store the sentinel pair (SigNull, SigNull) in their fanins;
// IsPI distinguishes them from the constant by excluding index 0.
type node struct {
	fanin0, fanin1 z.Signal
	refCount       uint32
	mark           uint32
}

// Net is an And-Inverter Graph: an append-only node array with a
// structural-hash index over AND-node fanin pairs, a list of primary
// input indices, and a list of primary output signals.
//
// Net is not safe for concurrent CreatePI/CreateAnd/CreatePO calls;
// the build phase is single-threaded. Once built, CheckAndMark/Mark/
// ResetMark are the sole supported concurrent operations.
type Net struct {
	nodes []node

	// strashHead/strashNext implement a chained hash index over AND
	// node fanin pairs, kept as a separate structure from node
	// (node carries exactly fanins + refcount + mark, nothing more).
	// strashHead[bucket] and strashNext[idx] are both 0 to mean "no
	// entry": node 0 (the constant) is never itself hashed, so 0 is
	// unambiguous as an empty-chain marker.
	strashHead []uint32
	strashNext []uint32

	pis []z.Index
	pos []z.Signal
}

const defaultCap = 128

// NewNet creates an empty Net, with node 0 reserved as the constant-0
// node (I1).
func NewNet() *Net {
	return NewNetCap(defaultCap)
}

// NewNetCap creates an empty Net with an initial capacity hint.
func NewNetCap(capHint int) *Net {
	if capHint < 1 {
		capHint = defaultCap
	}
	net := &Net{
		nodes:      make([]node, 1, capHint),
		strashHead: make([]uint32, capHint),
		strashNext: make([]uint32, capHint),
	}
	return net
}

// GetConstant returns the signal for the constant node, complemented
// according to value.
func (net *Net) GetConstant(value bool) z.Signal {
	return z.Index(0).Pos().Xor(value)
}

// CreatePI appends a fresh primary input and returns its (uncomplemented)
// signal. Not safe for concurrent use.
func (net *Net) CreatePI() z.Signal {
	nd, idx := net.newNode()
	nd.fanin0 = z.SigNull
	nd.fanin1 = z.SigNull
	net.pis = append(net.pis, idx)
	return idx.Pos()
}

// CreateAnd returns a signal equivalent to "a and b", structurally
// hashing against existing AND nodes and applying the trivial
// simplification rules of P3. Not safe for concurrent use.
func (net *Net) CreateAnd(a, b z.Signal) z.Signal {
	if a.Index() > b.Index() {
		a, b = b, a
	}
	if a.Index() == b.Index() {
		if a == b {
			return a
		}
		return net.GetConstant(false)
	}
	if a.Index() == 0 {
		if a.IsComplemented() {
			// a is constant-1: and(1, b) == b
			return b
		}
		return net.GetConstant(false)
	}
	if idx, ok := net.lookup(a, b); ok {
		return idx.Pos()
	}
	nd, idx := net.newNode()
	nd.fanin0, nd.fanin1 = a, b
	net.insertHash(idx, a, b)
	net.incRef(a.Index())
	net.incRef(b.Index())
	return idx.Pos()
}

// CreatePO appends a primary output and increments the referenced
// node's ref_count (I6). Not safe for concurrent use.
func (net *Net) CreatePO(sig z.Signal) {
	net.pos = append(net.pos, sig)
	net.incRef(sig.Index())
}

// IsConstant reports whether n is the reserved constant-0 node (I1).
func (net *Net) IsConstant(n z.Index) bool {
	return n == 0
}

// IsPI reports whether n is a primary input, decided by the sentinel
// fanin encoding described in the data model: a non-constant node
// whose fanin slots both hold the same sentinel with a raw value less
// than the number of primary inputs created so far.
func (net *Net) IsPI(n z.Index) bool {
	if n == 0 || int(n) >= len(net.nodes) {
		return false
	}
	nd := &net.nodes[n]
	return nd.fanin0 == nd.fanin1 && uint32(nd.fanin0) < uint32(len(net.pis))
}

// IsComplemented reports whether s carries an inversion.
func (net *Net) IsComplemented(s z.Signal) bool {
	return s.IsComplemented()
}

// GetNode returns the node index referred to by s.
func (net *Net) GetNode(s z.Signal) z.Index {
	return s.Index()
}

// MakeSignal returns the uncomplemented signal for node n.
func (net *Net) MakeSignal(n z.Index) z.Signal {
	return n.Pos()
}

// FaninSize returns the number of fanins of n: 0 for the constant and
// primary inputs, 2 for AND nodes.
func (net *Net) FaninSize(n z.Index) int {
	if net.IsConstant(n) || net.IsPI(n) {
		return 0
	}
	return 2
}

// FanoutSize returns the number of live references to n (P4): other
// nodes' fanins plus primary outputs referring to n.
func (net *Net) FanoutSize(n z.Index) int {
	return int(net.nodes[n].refCount)
}

// Len returns the number of nodes in the graph, including the
// constant node.
func (net *Net) Len() int {
	return len(net.nodes)
}

// Inputs returns the indices of all primary inputs, in creation order.
func (net *Net) Inputs() []z.Index {
	out := make([]z.Index, len(net.pis))
	copy(out, net.pis)
	return out
}

// Outputs returns the primary output signals, in creation order.
func (net *Net) Outputs() []z.Signal {
	out := make([]z.Signal, len(net.pos))
	copy(out, net.pos)
	return out
}

// ForeachNode calls fn for every node index 0..Len(), in topological
// order (I4 guarantees every AND node's fanins precede it).
func (net *Net) ForeachNode(fn func(z.Index)) {
	for i := range net.nodes {
		fn(z.Index(i))
	}
}

// ForeachFanin calls fn with n's fanins in order, skipping constants
// and primary inputs. fn may return true to stop after the first
// fanin.
func (net *Net) ForeachFanin(n z.Index, fn func(z.Signal) bool) {
	if net.IsConstant(n) || net.IsPI(n) {
		return
	}
	nd := &net.nodes[n]
	if fn(nd.fanin0) {
		return
	}
	fn(nd.fanin1)
}

// Ins returns the two fanin signals of n, or (SigNull, SigNull) if n
// is a constant or primary input.
func (net *Net) Ins(n z.Index) (z.Signal, z.Signal) {
	nd := &net.nodes[n]
	return nd.fanin0, nd.fanin1
}

func (net *Net) incRef(n z.Index) {
	net.nodes[n].refCount++
}

func (net *Net) newNode() (*node, z.Index) {
	net.ensureCapacity()
	idx := z.Index(len(net.nodes))
	net.nodes = append(net.nodes, node{})
	return &net.nodes[idx], idx
}

// ensureCapacity grows the node array and the structural-hash index in
// step once the node array is 90% full, reserving capacity for
// ceil(pi * current capacity). This growth factor, loosely pi, is
// chosen to avoid repeated reallocation storms under steady-state
// AND-node creation.
func (net *Net) ensureCapacity() {
	cur := cap(net.nodes)
	if len(net.nodes) < (cur*9)/10 {
		return
	}
	newCap := int(math.Ceil(math.Pi * float64(cur)))
	if newCap <= cur {
		newCap = cur + 1
	}
	nodes := make([]node, len(net.nodes), newCap)
	copy(nodes, net.nodes)
	net.nodes = nodes

	head := make([]uint32, newCap)
	next := make([]uint32, newCap)
	for i := 1; i < len(net.nodes); i++ {
		nd := &net.nodes[i]
		if nd.fanin0 == nd.fanin1 {
			// constant sentinel or PI: never hashed.
			continue
		}
		rehash(head, next, uint32(i), nd.fanin0, nd.fanin1)
	}
	net.strashHead = head
	net.strashNext = next
}

func (net *Net) lookup(a, b z.Signal) (z.Index, bool) {
	bucket := strashCode(a, b) % uint32(len(net.strashHead))
	idx := net.strashHead[bucket]
	for idx != 0 {
		nd := &net.nodes[idx]
		if nd.fanin0 == a && nd.fanin1 == b {
			return z.Index(idx), true
		}
		idx = net.strashNext[idx]
	}
	return 0, false
}

func (net *Net) insertHash(idx z.Index, a, b z.Signal) {
	rehash(net.strashHead, net.strashNext, uint32(idx), a, b)
}

func rehash(head, next []uint32, idx uint32, a, b z.Signal) {
	bucket := strashCode(a, b) % uint32(len(head))
	next[idx] = head[bucket]
	head[bucket] = idx
}

func strashCode(a, b z.Signal) uint32 {
	return uint32(a<<13) * uint32(b)
}
