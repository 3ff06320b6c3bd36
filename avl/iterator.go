// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the record with the lowest key value
func (tree *Tree[R]) First() *R {
	p := tree.root.first()
	if nil == p {
		return nil
	}
	return p.record
}

// internal: lowest node in a sub-tree
func (p *node[R]) first() *node[R] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the record with the highest key value
func (tree *Tree[R]) Last() *R {
	p := tree.root.last()
	if nil == p {
		return nil
	}
	return p.record
}

// internal: highest node in a sub-tree
func (p *node[R]) last() *node[R] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
