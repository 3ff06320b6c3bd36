// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// single right rotation: the left child becomes the sub-tree root
//
// balances are the caller's responsibility
func (tree *Tree[R]) rotateRight(p *node[R]) *node[R] {
	p1 := p.left
	p.left = p1.right
	p1.right = p
	tree.rotations.Increment()
	return p1
}

// single left rotation: the right child becomes the sub-tree root
func (tree *Tree[R]) rotateLeft(p *node[R]) *node[R] {
	p1 := p.right
	p.right = p1.left
	p1.left = p
	tree.rotations.Increment()
	return p1
}

// insert: left branch of a left high node has grown
//
// the returned sub-tree has the height p had before the insert
func (tree *Tree[R]) insertLeftBalance(p *node[R]) *node[R] {
	p1 := p.left
	switch p1.balance {
	case LeftHigh:
		// single LL rotation
		p.balance = Even
		p1.balance = Even
		return tree.rotateRight(p)

	case RightHigh:
		// double LR rotation
		p2 := p1.right
		switch p2.balance {
		case LeftHigh:
			p.balance = RightHigh
			p1.balance = Even
		case Even:
			p.balance = Even
			p1.balance = Even
		case RightHigh:
			p.balance = Even
			p1.balance = LeftHigh
		}
		p2.balance = Even
		p.left = tree.rotateLeft(p1)
		return tree.rotateRight(p)

	default:
		fault.Panicf("avl: insert rebalance with %s left child", p1.balance)
		return nil
	}
}

// insert: right branch of a right high node has grown
func (tree *Tree[R]) insertRightBalance(p *node[R]) *node[R] {
	p1 := p.right
	switch p1.balance {
	case RightHigh:
		// single RR rotation
		p.balance = Even
		p1.balance = Even
		return tree.rotateLeft(p)

	case LeftHigh:
		// double RL rotation
		p2 := p1.left
		switch p2.balance {
		case LeftHigh:
			p.balance = Even
			p1.balance = RightHigh
		case Even:
			p.balance = Even
			p1.balance = Even
		case RightHigh:
			p.balance = LeftHigh
			p1.balance = Even
		}
		p2.balance = Even
		p.right = tree.rotateRight(p1)
		return tree.rotateLeft(p)

	default:
		fault.Panicf("avl: insert rebalance with %s right child", p1.balance)
		return nil
	}
}

// delete: left branch has shrunk
//
// returns the new sub-tree root and whether the sub-tree is now shorter
func (tree *Tree[R]) leftShrunk(p *node[R]) (*node[R], bool) {
	switch p.balance {
	case LeftHigh:
		p.balance = Even
		return p, true
	case Even:
		p.balance = RightHigh
		return p, false
	}

	// balance = RightHigh, rebalance
	p1 := p.right
	if LeftHigh == p1.balance {
		// double RL rotation
		p2 := p1.left
		switch p2.balance {
		case LeftHigh:
			p.balance = Even
			p1.balance = RightHigh
		case Even:
			p.balance = Even
			p1.balance = Even
		case RightHigh:
			p.balance = LeftHigh
			p1.balance = Even
		}
		p2.balance = Even
		p.right = tree.rotateRight(p1)
		return tree.rotateLeft(p), true
	}

	// single RR rotation
	shorter := true
	if Even == p1.balance {
		p.balance = RightHigh
		p1.balance = LeftHigh
		shorter = false
	} else {
		p.balance = Even
		p1.balance = Even
	}
	return tree.rotateLeft(p), shorter
}

// delete: right branch has shrunk
func (tree *Tree[R]) rightShrunk(p *node[R]) (*node[R], bool) {
	switch p.balance {
	case RightHigh:
		p.balance = Even
		return p, true
	case Even:
		p.balance = LeftHigh
		return p, false
	}

	// balance = LeftHigh, rebalance
	p1 := p.left
	if RightHigh == p1.balance {
		// double LR rotation
		p2 := p1.right
		switch p2.balance {
		case LeftHigh:
			p.balance = RightHigh
			p1.balance = Even
		case Even:
			p.balance = Even
			p1.balance = Even
		case RightHigh:
			p.balance = Even
			p1.balance = LeftHigh
		}
		p2.balance = Even
		p.left = tree.rotateLeft(p1)
		return tree.rotateRight(p), true
	}

	// single LL rotation
	shorter := true
	if Even == p1.balance {
		p.balance = LeftHigh
		p1.balance = RightHigh
		shorter = false
	} else {
		p.balance = Even
		p1.balance = Even
	}
	return tree.rotateRight(p), shorter
}
