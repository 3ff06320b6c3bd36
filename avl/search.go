// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// Search - queue every record whose key equals target
//
// any results not yet retrieved from a previous search are
// discarded.  Results are queued in ascending order and the number
// queued is returned
func (tree *Tree[R]) Search(target *R) int {
	tree.results.Flush()
	if nil == target {
		return 0
	}
	if tree.allowDuplicates {
		tree.retrieveDuplicates(tree.root, target)
	} else {
		tree.retrieve(tree.root, target)
	}
	return tree.results.Count()
}

// GetNextResult - remove and return the next queued search result
//
// returns false when no results remain
func (tree *Tree[R]) GetNextResult() (*R, bool) {
	return tree.results.Dequeue()
}

// PendingResults - number of search results not yet retrieved
func (tree *Tree[R]) PendingResults() int {
	return tree.results.Count()
}

// FlushSearch - discard all pending search results
func (tree *Tree[R]) FlushSearch() {
	tree.results.Flush()
}

// binary search for the single match of a unique key
func (tree *Tree[R]) retrieve(p *node[R], target *R) {
	for nil != p {
		c := tree.compare(target, p.record)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			tree.queueResult(p.record)
			return
		}
	}
}

// find all matches: both sub-trees of a match may hold equal keys
func (tree *Tree[R]) retrieveDuplicates(p *node[R], target *R) {
	if nil == p {
		return
	}
	c := tree.compare(target, p.record)
	switch {
	case c < 0:
		tree.retrieveDuplicates(p.left, target)
	case c > 0:
		tree.retrieveDuplicates(p.right, target)
	default:
		tree.retrieveDuplicates(p.left, target)
		tree.queueResult(p.record)
		tree.retrieveDuplicates(p.right, target)
	}
}

// the result queue is created unbounded so it cannot fill
func (tree *Tree[R]) queueResult(record *R) {
	fault.PanicIfError("avl: queue search result", tree.results.Enqueue(record))
}
