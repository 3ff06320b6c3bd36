// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// result of inserting into a sub-tree
type insertResult[R any] struct {
	root   *node[R] // possibly new sub-tree root
	taller bool     // sub-tree height increased
	err    error
}

// Insert - insert a record into the tree
//
// fails with fault.ErrDuplicateKey if the key is already present and
// duplicates are not allowed, fault.ErrTreeFull if the node limit has
// been reached
func (tree *Tree[R]) Insert(record *R) error {
	if nil == record {
		return fault.ErrNilRecord
	}
	n := tree.nodes.newNode(record)
	if nil == n {
		return fault.ErrTreeFull
	}

	r := tree.insert(tree.root, n)
	tree.root = r.root
	if nil != r.err {
		tree.nodes.freeNode(n)
		return r.err
	}
	tree.count += 1
	return nil
}

// InsertNew - create a record with the tree's factory and insert it
//
// on failure the created record is not retained by the tree
func (tree *Tree[R]) InsertNew() (*R, error) {
	if nil == tree.factory {
		return nil, fault.ErrNoFactory
	}
	record := tree.factory()
	if nil == record {
		return nil, fault.ErrNilRecord
	}
	err := tree.Insert(record)
	if nil != err {
		return nil, err
	}
	return record, nil
}

// internal routine for insert
func (tree *Tree[R]) insert(p *node[R], n *node[R]) insertResult[R] {
	if nil == p { // insert new node
		return insertResult[R]{
			root:   n,
			taller: true,
		}
	}

	c := tree.compare(n.record, p.record)
	if 0 == c && !tree.allowDuplicates {
		return insertResult[R]{
			root: p,
			err:  fault.ErrDuplicateKey,
		}
	}

	if c < 0 {
		r := tree.insert(p.left, n)
		p.left = r.root
		if !r.taller {
			return insertResult[R]{root: p, err: r.err}
		}

		// left branch has grown
		switch p.balance {
		case RightHigh:
			p.balance = Even
			return insertResult[R]{root: p}
		case Even:
			p.balance = LeftHigh
			return insertResult[R]{root: p, taller: true}
		default: // LeftHigh, rebalance
			return insertResult[R]{root: tree.insertLeftBalance(p)}
		}
	}

	// greater, or an equal key when duplicates are allowed
	r := tree.insert(p.right, n)
	p.right = r.root
	if !r.taller {
		return insertResult[R]{root: p, err: r.err}
	}

	// right branch has grown
	switch p.balance {
	case LeftHigh:
		p.balance = Even
		return insertResult[R]{root: p}
	case Even:
		p.balance = RightHigh
		return insertResult[R]{root: p, taller: true}
	default: // RightHigh, rebalance
		return insertResult[R]{root: tree.insertRightBalance(p)}
	}
}
