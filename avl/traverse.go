// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Traverse - visit every record in ascending order
//
// visit must not modify the tree
func (tree *Tree[R]) Traverse(visit VisitFunc[R]) {
	traverse(tree.root, visit)
}

// TraverseReverse - visit every record in descending order
func (tree *Tree[R]) TraverseReverse(visit VisitFunc[R]) {
	traverseReverse(tree.root, visit)
}

// Filter - visit, in ascending order, the records for which
// match(record, target) is true and return how many were visited
func (tree *Tree[R]) Filter(match MatchFunc[R], visit VisitFunc[R], target *R) int {
	return filter(tree.root, match, visit, target)
}

func traverse[R any](p *node[R], visit VisitFunc[R]) {
	if nil == p {
		return
	}
	traverse(p.left, visit)
	visit(p.record)
	traverse(p.right, visit)
}

func traverseReverse[R any](p *node[R], visit VisitFunc[R]) {
	if nil == p {
		return
	}
	traverseReverse(p.right, visit)
	visit(p.record)
	traverseReverse(p.left, visit)
}

func filter[R any](p *node[R], match MatchFunc[R], visit VisitFunc[R], target *R) int {
	if nil == p {
		return 0
	}
	n := filter(p.left, match, visit, target)
	if match(p.record, target) {
		visit(p.record)
		n += 1
	}
	return n + filter(p.right, match, visit, target)
}
