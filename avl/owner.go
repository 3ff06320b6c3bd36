// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// Disposition - what happens to a record removed from an Owner
type Disposition int

// dispositions
const (
	Preserve Disposition = iota // leave the record to the caller
	Destroy                     // run the owner's destructor
)

// String - printable disposition
func (d Disposition) String() string {
	switch d {
	case Preserve:
		return "preserve"
	case Destroy:
		return "destroy"
	default:
		return "unknown"
	}
}

// Owner - a tree that owns its records and may destroy them
type Owner[R any] struct {
	*Tree[R]
	destroy DestroyFunc[R]
}

// NewOwner - create an initially empty tree with a record destructor
func NewOwner[R any](compare CompareFunc[R], destroy DestroyFunc[R], options ...Option[R]) *Owner[R] {
	return &Owner[R]{
		Tree:    New(compare, options...),
		destroy: destroy,
	}
}

// InsertNew - create a record with the factory and insert it
//
// a record that could not be inserted is destroyed
func (owner *Owner[R]) InsertNew() (*R, error) {
	if nil == owner.factory {
		return owner.Tree.InsertNew()
	}
	record := owner.factory()
	if nil == record {
		return nil, fault.ErrNilRecord
	}
	err := owner.Insert(record)
	if nil != err {
		owner.dispose(record, Destroy)
		return nil, err
	}
	return record, nil
}

// DeleteWith - remove the first matching record that confirm accepts
//
// with Destroy the returned record has already been destroyed and may
// only be compared, not dereferenced
func (owner *Owner[R]) DeleteWith(key *R, confirm ConfirmFunc[R], d Disposition) (*R, bool) {
	return owner.delete(deleteRequest[R]{
		key:     key,
		confirm: confirm,
		destroy: owner.destructor(d),
	})
}

// DeleteAtWith - remove exactly this record (compared by address)
func (owner *Owner[R]) DeleteAtWith(record *R, d Disposition) bool {
	_, found := owner.delete(deleteRequest[R]{
		key:       record,
		atAddress: true,
		destroy:   owner.destructor(d),
	})
	return found
}

// Close - release every node, destroying the records first if d is
// Destroy
func (owner *Owner[R]) Close(d Disposition) {
	if destroy := owner.destructor(d); nil != destroy {
		traverse(owner.root, VisitFunc[R](destroy))
	}
	owner.Tree.Close()
}

func (owner *Owner[R]) destructor(d Disposition) DestroyFunc[R] {
	if Destroy != d {
		return nil
	}
	return owner.destroy
}

func (owner *Owner[R]) dispose(record *R, d Disposition) {
	if destroy := owner.destructor(d); nil != destroy {
		destroy(record)
	}
}

// Close - release every node and pending result; records are never
// touched
//
// the tree is empty afterwards and may be reused
func (tree *Tree[R]) Close() {
	release(tree.root)
	tree.root = nil
	tree.count = 0
	tree.nodes.reset()
	tree.results.Flush()
}

// internal: unlink a sub-tree post-order
func release[R any](p *node[R]) {
	if nil == p {
		return
	}
	release(p.left)
	release(p.right)
	p.left = nil
	p.right = nil
	p.record = nil
}
