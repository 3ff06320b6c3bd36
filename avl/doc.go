// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree used as an in-memory secondary
// index over caller owned records
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The base algorithm was described in an old book by Niklaus Wirth
// called Algorithms + Data Structures = Programs.
//
// This version stores only a handle (*R) to each record and orders
// the handles with a comparison function given at construction.  A
// tree may allow duplicate keys, in which case an equal key is
// inserted to the right.  Rotations do not know about equal keys, so
// an equal-keyed node can later end up on either side of another one;
// Search and the duplicate aware delete therefore scan both subtrees
// of every match.
//
// Search fills a result queue owned by the tree which is then drained
// one record at a time with GetNextResult.  Each Search discards any
// results not yet retrieved.
//
// Ownership of records is fixed when the tree is created: a Tree made
// by New never destroys a record; only an Owner made by NewOwner has a
// destructor, and it runs only when a Destroy disposition is given.
// When several trees index the same records exactly one of them
// should be an Owner.
package avl
