// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// Balance - height(left) - height(right) of a node
type Balance int8

// the only values a balance may hold between operations
const (
	RightHigh Balance = -1
	Even      Balance = 0
	LeftHigh  Balance = +1
)

// String - symbolic form for printing
func (b Balance) String() string {
	switch b {
	case RightHigh:
		return "RH"
	case Even:
		return "EH"
	case LeftHigh:
		return "LH"
	default:
		return "??"
	}
}

// a node in the tree
type node[R any] struct {
	record  *R       // caller owned data
	left    *node[R] // left sub-tree
	right   *node[R] // right sub-tree
	balance Balance
}

// per tree node allocator
type allocator[R any] struct {
	pool    *node[R] // linked list of reclaimed nodes (through right)
	free    int      // number of nodes in the pool
	live    int      // nodes currently in a tree
	maximum int      // 0 => no limit on live
}

// allocate a new node, reuses reclaimed nodes if any are available
//
// returns nil if the node limit has been reached
func (a *allocator[R]) newNode(record *R) *node[R] {
	if a.isFull() {
		return nil
	}
	a.live += 1
	if nil == a.pool {
		if 0 != a.free {
			fault.Panicf("avl: node pool corrupt: free: %d", a.free)
		}
		return &node[R]{
			record:  record,
			balance: Even,
		}
	}
	p := a.pool
	a.pool = p.right
	p.record = record
	p.balance = Even
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	a.free -= 1
	return p
}

// reclaim a node and keep it in the pool
func (a *allocator[R]) freeNode(p *node[R]) {
	p.record = nil
	p.left = nil
	p.balance = Even
	p.right = a.pool // use as free list pointer
	a.pool = p
	a.free += 1
	a.live -= 1
}

// forget every node, live or pooled
func (a *allocator[R]) reset() {
	a.pool = nil
	a.free = 0
	a.live = 0
}

// true if another node cannot be allocated
func (a *allocator[R]) isFull() bool {
	return a.maximum > 0 && a.live >= a.maximum
}
