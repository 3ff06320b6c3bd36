// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/recordindex/fault"
)

// PoolHandle - one prefixed table of the database
type PoolHandle struct {
	prefix byte
	limit  []byte
	owner  *LevelDB
}

// create a handle for a single byte prefix
func newPool(owner *LevelDB, prefix byte) *PoolHandle {
	limit := []byte(nil)
	if prefix < 255 {
		limit = []byte{prefix + 1}
	}
	return &PoolHandle{
		prefix: prefix,
		limit:  limit,
		owner:  owner,
	}
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// store a key/value bytes pair to the database
func (p *PoolHandle) put(key []byte, value []byte) error {
	p.owner.RLock()
	defer p.owner.RUnlock()
	if nil == p.owner.database {
		return fault.ErrDatabaseClosed
	}
	return p.owner.database.Put(p.prefixKey(key), value, nil)
}

// remove a key from the database
func (p *PoolHandle) remove(key []byte) error {
	p.owner.RLock()
	defer p.owner.RUnlock()
	if nil == p.owner.database {
		return fault.ErrDatabaseClosed
	}
	return p.owner.database.Delete(p.prefixKey(key), nil)
}

// read a value for a given key
//
// returns nil if the key is not present
func (p *PoolHandle) get(key []byte) ([]byte, error) {
	p.owner.RLock()
	defer p.owner.RUnlock()
	if nil == p.owner.database {
		return nil, fault.ErrDatabaseClosed
	}
	value, err := p.owner.database.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

// check if a key exists
func (p *PoolHandle) has(key []byte) (bool, error) {
	p.owner.RLock()
	defer p.owner.RUnlock()
	if nil == p.owner.database {
		return false, fault.ErrDatabaseClosed
	}
	return p.owner.database.Has(p.prefixKey(key), nil)
}

// run a function on all elements of the pool in key order
//
// stops at the first error returned by f
func (p *PoolHandle) Map(f func(key []byte, value []byte) error) error {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	p.owner.RLock()
	defer p.owner.RUnlock()
	if nil == p.owner.database {
		return fault.ErrDatabaseClosed
	}

	iter := p.owner.database.NewIterator(&maxRange, nil)

	var err error
iterating:
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		err = f(dataKey, dataValue)
		if nil != err {
			break iterating
		}
	}
	iter.Release()
	if nil == err {
		err = iter.Error()
	}
	return err
}

// delete every element of the pool in a single batch
func (p *PoolHandle) clear() (int, error) {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix},
		Limit: p.limit,
	}

	p.owner.Lock()
	defer p.owner.Unlock()
	if nil == p.owner.database {
		return 0, fault.ErrDatabaseClosed
	}

	batch := new(leveldb.Batch)
	iter := p.owner.database.NewIterator(&maxRange, nil)
	for iter.Next() {
		key := make([]byte, len(iter.Key()))
		copy(key, iter.Key())
		batch.Delete(key)
	}
	iter.Release()
	if err := iter.Error(); nil != err {
		return 0, err
	}
	return batch.Len(), p.owner.database.Write(batch, nil)
}
