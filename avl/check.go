// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckBalance - true if every balance factor is in range and equal
// to the real height difference, and keys never decrease in order
func (tree *Tree[R]) CheckBalance() bool {
	if _, ok := checkHeight(tree.root); !ok {
		return false
	}
	ordered := true
	var previous *R
	traverse(tree.root, func(record *R) {
		if nil != previous && tree.compare(previous, record) > 0 {
			ordered = false
		}
		previous = record
	})
	return ordered
}

// CheckCounts - true if the count matches the nodes in the tree
func (tree *Tree[R]) CheckCounts() bool {
	return tree.count == countNodes(tree.root) && tree.count == tree.nodes.live
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[R]) Height() int {
	h, _ := checkHeight(tree.root)
	return h
}

// internal: height of a sub-tree and whether its balances are correct
func checkHeight[R any](p *node[R]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, lok := checkHeight(p.left)
	rh, rok := checkHeight(p.right)
	height := 1 + lh
	if rh > lh {
		height = 1 + rh
	}
	d := lh - rh
	ok := lok && rok && d >= -1 && d <= 1 && Balance(d) == p.balance
	return height, ok
}

func countNodes[R any](p *node[R]) int {
	if nil == p {
		return 0
	}
	return 1 + countNodes(p.left) + countNodes(p.right)
}
