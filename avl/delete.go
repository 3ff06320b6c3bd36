// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// what to delete and what to do with the removed record
type deleteRequest[R any] struct {
	key       *R
	confirm   ConfirmFunc[R] // only used when !atAddress
	atAddress bool           // key is the exact record to remove
	destroy   DestroyFunc[R] // nil => preserve
}

// result of deleting from a sub-tree
type deleteResult[R any] struct {
	root    *node[R] // possibly new sub-tree root
	shorter bool     // sub-tree height decreased
	record  *R       // the removed record
	found   bool
}

// Delete - remove the first matching record that confirm accepts
//
// confirm may be nil to accept the first record with an equal key.
// The removed record is returned and is never destroyed.
func (tree *Tree[R]) Delete(key *R, confirm ConfirmFunc[R]) (*R, bool) {
	return tree.delete(deleteRequest[R]{
		key:     key,
		confirm: confirm,
	})
}

// DeleteAt - remove exactly this record (compared by address)
func (tree *Tree[R]) DeleteAt(record *R) bool {
	_, found := tree.delete(deleteRequest[R]{
		key:       record,
		atAddress: true,
	})
	return found
}

// common delete for all variants
func (tree *Tree[R]) delete(request deleteRequest[R]) (*R, bool) {
	if nil == tree.root || nil == request.key {
		return nil, false
	}

	var r deleteResult[R]
	if tree.allowDuplicates {
		r = tree.deleteDuplicate(tree.root, &request)
	} else {
		r = tree.deleteUnique(tree.root, &request)
	}
	tree.root = r.root
	if !r.found {
		return nil, false
	}
	tree.count -= 1
	return r.record, true
}

// true if a key match is the record that the request wants removed
func (request *deleteRequest[R]) accepts(candidate *R) bool {
	if request.atAddress {
		return candidate == request.key
	}
	if nil == request.confirm {
		return true
	}
	return request.confirm(candidate)
}

// delete from a tree whose keys are all distinct
func (tree *Tree[R]) deleteUnique(p *node[R], request *deleteRequest[R]) deleteResult[R] {
	if nil == p {
		return deleteResult[R]{}
	}

	c := tree.compare(request.key, p.record)
	if c < 0 {
		r := tree.deleteUnique(p.left, request)
		p.left = r.root
		return tree.afterLeftDelete(p, r)
	}
	if c > 0 {
		r := tree.deleteUnique(p.right, request)
		p.right = r.root
		return tree.afterRightDelete(p, r)
	}

	// the only node with this key
	if !request.accepts(p.record) {
		return deleteResult[R]{root: p}
	}
	return tree.remove(p, request)
}

// delete from a tree that may hold equal keys
//
// rotations can move an equal key to either side of a match, so a
// rejected match probes its left sub-tree and then its right sub-tree
func (tree *Tree[R]) deleteDuplicate(p *node[R], request *deleteRequest[R]) deleteResult[R] {
	if nil == p {
		return deleteResult[R]{}
	}

	c := tree.compare(request.key, p.record)
	if c < 0 {
		r := tree.deleteDuplicate(p.left, request)
		p.left = r.root
		return tree.afterLeftDelete(p, r)
	}
	if c > 0 {
		r := tree.deleteDuplicate(p.right, request)
		p.right = r.root
		return tree.afterRightDelete(p, r)
	}

	if request.accepts(p.record) {
		return tree.remove(p, request)
	}

	r := tree.deleteDuplicate(p.left, request)
	p.left = r.root
	if r.found {
		return tree.afterLeftDelete(p, r)
	}

	r = tree.deleteDuplicate(p.right, request)
	p.right = r.root
	return tree.afterRightDelete(p, r)
}

// propagate a delete from the left sub-tree of p
func (tree *Tree[R]) afterLeftDelete(p *node[R], r deleteResult[R]) deleteResult[R] {
	root, shorter := p, false
	if r.shorter {
		root, shorter = tree.leftShrunk(p)
	}
	return deleteResult[R]{
		root:    root,
		shorter: shorter,
		record:  r.record,
		found:   r.found,
	}
}

// propagate a delete from the right sub-tree of p
func (tree *Tree[R]) afterRightDelete(p *node[R], r deleteResult[R]) deleteResult[R] {
	root, shorter := p, false
	if r.shorter {
		root, shorter = tree.rightShrunk(p)
	}
	return deleteResult[R]{
		root:    root,
		shorter: shorter,
		record:  r.record,
		found:   r.found,
	}
}

// unlink node p which holds the record to remove
func (tree *Tree[R]) remove(p *node[R], request *deleteRequest[R]) deleteResult[R] {
	record := p.record

	var root *node[R]
	shorter := true
	dead := p

	if nil == p.left {
		root = p.right
	} else if nil == p.right {
		root = p.left
	} else {
		// exchange with the in-order predecessor and unlink the
		// predecessor's node
		left, leftShorter, predecessor := tree.removeRightmost(p.left)
		p.left = left
		p.record, predecessor.record = predecessor.record, p.record
		dead = predecessor
		root, shorter = p, false
		if leftShorter {
			root, shorter = tree.leftShrunk(p)
		}
	}

	tree.nodes.freeNode(dead)

	if nil != request.destroy {
		request.destroy(record)
	}

	return deleteResult[R]{
		root:    root,
		shorter: shorter,
		record:  record,
		found:   true,
	}
}

// detach the rightmost node of a sub-tree
//
// returns the new sub-tree root, whether it is shorter and the
// detached node
func (tree *Tree[R]) removeRightmost(p *node[R]) (*node[R], bool, *node[R]) {
	if nil == p.right {
		return p.left, true, p
	}
	right, shorter, rightmost := tree.removeRightmost(p.right)
	p.right = right
	if !shorter {
		return p, false, rightmost
	}
	root, shorter := tree.rightShrunk(p)
	return root, shorter, rightmost
}
