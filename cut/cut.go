// Copyright 2024 The Aigcut Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cut

import (
	"github.com/aigcut/aigcut/aig"
	"github.com/aigcut/aigcut/z"
)

// DefaultSizeLimit is the target cut width used by CreateCut.
const DefaultSizeLimit = 6

// maxOversizeIterations bounds how many consecutive oversize
// iterations expand tolerates before giving up and returning whatever
// it has, claimed or not.
const maxOversizeIterations = 5

// CreateCut claims n for threadID and grows a cut around it up to
// DefaultSizeLimit leaves. It returns nil if n (or its subtree) is
// already claimed by another thread id; the caller treats a nil cut
// as "try later or skip". threadID must be non-zero.
func CreateCut(net *aig.Net, n z.Index, threadID uint32) []z.Index {
	if threadID == 0 {
		panic("cut: CreateCut called with thread id 0")
	}
	if !net.CheckAndMark(n, threadID) {
		return nil
	}
	return expand(net, []z.Index{n}, threadID, DefaultSizeLimit)
}

// ReleaseCut clears threadID's marks over the subtree rooted at n,
// stopping at any node not owned by threadID. This naturally includes
// the constant node, which is never marked, and any PI not claimed as
// a leaf of this cut; a PI that was claimed is unmarked like any other
// node and the walk stops there anyway, since ForeachFanin has
// nothing to push for it. It walks an explicit worklist rather than
// recursing: for a deep AIG the claimed subtree can be far deeper than
// a goroutine's default stack margin.
//
// cut is accepted for symmetry with CreateCut's return value; release
// always walks from n through the graph's own fanins, not the cut
// slice, so the traversal sees every claimed node even if some of
// them did not make it into the final leaf set.
func ReleaseCut(net *aig.Net, n z.Index, cut []z.Index, threadID uint32) {
	if threadID == 0 {
		panic("cut: ReleaseCut called with thread id 0")
	}
	stack := []z.Index{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if net.Mark(top) != threadID {
			continue
		}
		net.ResetMark(top)
		net.ForeachFanin(top, func(s z.Signal) bool {
			stack = append(stack, net.GetNode(s))
			return false
		})
	}
}

// expand0 runs cost-free expansion to a fixed point: a non-PI,
// non-constant leaf is dropped whenever at least one of its two
// fanins is already marked by threadID (cost-free, since absorbing
// both fanins costs at most one new leaf). The other fanin, if it is
// not already marked by threadID, is claimed and added as the
// replacement leaf; a PI fanin is claimed exactly like any other node
// here — it is not given special free treatment. If that claim fails
// (the fanin is owned by another thread), the leaf stays in the cut
// unchanged, so the cut still covers every path through it. It
// reports the resulting cut and whether every remaining leaf is a PI
// or the constant.
func expand0(net *aig.Net, leaves []z.Index, threadID uint32) ([]z.Index, bool) {
	for {
		present := make(map[z.Index]bool, len(leaves))
		for _, x := range leaves {
			present[x] = true
		}
		kept := make([]z.Index, 0, len(leaves))
		var pending []z.Index
		pendingSeen := make(map[z.Index]bool)
		changed := false

		addPending := func(f z.Index) {
			if !present[f] && !pendingSeen[f] {
				pending = append(pending, f)
				pendingSeen[f] = true
			}
		}

		for _, x := range leaves {
			if net.IsConstant(x) || net.IsPI(x) {
				kept = append(kept, x)
				continue
			}
			a, b := net.Ins(x)
			na, nb := net.GetNode(a), net.GetNode(b)
			aIn := net.Mark(na) == threadID
			bIn := net.Mark(nb) == threadID

			insideCount := 0
			if aIn {
				insideCount++
			}
			if bIn {
				insideCount++
			}
			if insideCount < 1 {
				// Both fanins outside: cost is not 1, leave x alone.
				kept = append(kept, x)
				continue
			}

			var expansionPoint z.Index
			hasExpansionPoint := false
			switch {
			case !aIn:
				expansionPoint, hasExpansionPoint = na, true
			case !bIn:
				expansionPoint, hasExpansionPoint = nb, true
			}
			// The constant node can never actually reach here as a
			// fanin (create_and's trivial rules eliminate it), but
			// guard it anyway rather than attempt to mark it.
			if hasExpansionPoint && !net.IsConstant(expansionPoint) {
				if !net.CheckAndMark(expansionPoint, threadID) {
					// Claimed by another thread: keep x as a leaf.
					kept = append(kept, x)
					continue
				}
				addPending(expansionPoint)
			}
			changed = true
		}

		leaves = append(kept, pending...)
		if !changed {
			break
		}
	}

	trivial := true
	for _, x := range leaves {
		if !net.IsPI(x) && !net.IsConstant(x) {
			trivial = false
			break
		}
	}
	return leaves, trivial
}

// selectNextFanin picks the best candidate fanin to bring into a
// non-trivial cut: the fanin referenced by the most remaining leaves,
// ties broken by the candidate's own fanout size, further ties by
// which candidate was encountered first. Only the constant node is
// excluded from candidacy; a PI fanin is a legitimate (and claimable)
// candidate like any other node.
func selectNextFanin(net *aig.Net, leaves []z.Index) (z.Index, bool) {
	counts := make(map[z.Index]int)
	var order []z.Index
	for _, x := range leaves {
		if net.IsPI(x) || net.IsConstant(x) {
			continue
		}
		a, b := net.Ins(x)
		for _, s := range [2]z.Signal{a, b} {
			f := net.GetNode(s)
			if net.IsConstant(f) {
				continue
			}
			if counts[f] == 0 {
				order = append(order, f)
			}
			counts[f]++
		}
	}
	if len(order) == 0 {
		return 0, false
	}
	best := order[0]
	for _, f := range order[1:] {
		if betterCandidate(net, counts, f, best) {
			best = f
		}
	}
	return best, true
}

func betterCandidate(net *aig.Net, counts map[z.Index]int, a, b z.Index) bool {
	if counts[a] != counts[b] {
		return counts[a] > counts[b]
	}
	return net.FanoutSize(a) > net.FanoutSize(b)
}

// expand grows a freshly-claimed single-node cut toward sizeLimit
// using cost-free expansion interleaved with best-fanin claims,
// bounded by maxOversizeIterations consecutive oversize rounds.
func expand(net *aig.Net, leaves []z.Index, threadID uint32, sizeLimit int) []z.Index {
	leaves, trivial := expand0(net, leaves, threadID)
	if trivial {
		return leaves
	}

	var bestCut []z.Index
	if len(leaves) <= sizeLimit {
		bestCut = append([]z.Index(nil), leaves...)
	}

	oversize := 0
	for {
		m, ok := selectNextFanin(net, leaves)
		if !ok {
			panic("cut: selectNextFanin found no candidate for a non-trivial cut")
		}
		if net.CheckAndMark(m, threadID) && !containsIndex(leaves, m) {
			leaves = append(leaves, m)
		}
		// A failed claim here is not fatal: the next expand0 pass
		// simply cannot absorb m's parent yet, and a later iteration
		// may retry the same node if its owner has since released it.

		leaves, trivial = expand0(net, leaves, threadID)
		if len(leaves) > sizeLimit {
			oversize++
		} else {
			oversize = 0
			bestCut = append([]z.Index(nil), leaves...)
		}
		if trivial || oversize >= maxOversizeIterations {
			break
		}
	}

	if bestCut != nil {
		return bestCut
	}
	return leaves
}

func containsIndex(s []z.Index, v z.Index) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
