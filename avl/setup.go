// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/recordindex/counter"
	"github.com/bitmark-inc/recordindex/queue"
)

// CompareFunc - three way comparison: <0 if a sorts before b, 0 if
// equal, >0 if after
type CompareFunc[R any] func(a *R, b *R) int

// DestroyFunc - release the resources of a record
type DestroyFunc[R any] func(record *R)

// FactoryFunc - produce a new record for InsertNew
type FactoryFunc[R any] func() *R

// ConfirmFunc - true if candidate is really the record to delete
type ConfirmFunc[R any] func(candidate *R) bool

// VisitFunc - process one record during a traversal
type VisitFunc[R any] func(record *R)

// MatchFunc - true if record satisfies a filter for target
type MatchFunc[R any] func(record *R, target *R) bool

// PrintFunc - write a one line description of a record
type PrintFunc[R any] func(w io.Writer, record *R)

// Tree - type to hold the root node of a tree
type Tree[R any] struct {
	root            *node[R]
	count           int
	compare         CompareFunc[R]
	allowDuplicates bool
	factory         FactoryFunc[R]
	results         *queue.Queue[*R]
	nodes           allocator[R]
	rotations       counter.Counter
}

// Option - optional tree setting for New and NewOwner
type Option[R any] func(tree *Tree[R])

// AllowDuplicates - permit several records with equal keys
func AllowDuplicates[R any]() Option[R] {
	return func(tree *Tree[R]) {
		tree.allowDuplicates = true
	}
}

// WithFactory - set the record factory used by InsertNew
func WithFactory[R any](factory FactoryFunc[R]) Option[R] {
	return func(tree *Tree[R]) {
		tree.factory = factory
	}
}

// WithMaximumNodes - limit the number of nodes, zero is unlimited
func WithMaximumNodes[R any](n int) Option[R] {
	return func(tree *Tree[R]) {
		if n < 0 {
			n = 0
		}
		tree.nodes.maximum = n
	}
}

// New - create an initially empty tree that never destroys records
func New[R any](compare CompareFunc[R], options ...Option[R]) *Tree[R] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	tree := &Tree[R]{
		root:    nil,
		count:   0,
		compare: compare,
		results: queue.New[*R](0),
	}
	for _, option := range options {
		option(tree)
	}
	return tree
}

// IsEmpty - true if tree contains no data
func (tree *Tree[R]) IsEmpty() bool {
	return nil == tree.root
}

// IsFull - true if no node can be allocated for another insert
func (tree *Tree[R]) IsFull() bool {
	return tree.nodes.isFull()
}

// Count - number of nodes currently in the tree
func (tree *Tree[R]) Count() int {
	return tree.count
}

// AllowsDuplicates - true if equal keys may be inserted
func (tree *Tree[R]) AllowsDuplicates() bool {
	return tree.allowDuplicates
}

// Rotations - number of single rotations performed by rebalancing
//
// a double rotation counts as two
func (tree *Tree[R]) Rotations() uint64 {
	return tree.rotations.Uint64()
}
