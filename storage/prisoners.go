// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/record"
)

// Put - store or replace a prisoner record
func (s *LevelDB) Put(p *record.Prisoner) error {
	if nil == p {
		return fault.ErrNilRecord
	}
	err := s.prisoners.put([]byte(p.ID), []byte(p.Line()))
	if nil != err {
		s.log.Errorf("put: %s  error: %s", p.ID, err)
		return err
	}
	s.log.Debugf("put: %s", p.ID)
	return nil
}

// Delete - remove a prisoner record; a missing id is not an error
func (s *LevelDB) Delete(id string) error {
	err := s.prisoners.remove([]byte(id))
	if nil != err {
		s.log.Errorf("delete: %s  error: %s", id, err)
		return err
	}
	s.log.Debugf("delete: %s", id)
	return nil
}

// Get - read one prisoner record
func (s *LevelDB) Get(id string) (*record.Prisoner, error) {
	value, err := s.prisoners.get([]byte(id))
	if nil != err {
		return nil, err
	}
	if nil == value {
		return nil, fault.ErrRecordNotFound
	}
	return record.Parse(string(value))
}

// Has - check if a prisoner record exists
func (s *LevelDB) Has(id string) (bool, error) {
	return s.prisoners.has([]byte(id))
}

// ForEach - decode every stored record in id order
//
// a record that no longer parses stops the scan with its error
func (s *LevelDB) ForEach(f func(p *record.Prisoner) error) error {
	return s.prisoners.Map(func(key []byte, value []byte) error {
		p, err := record.Parse(string(value))
		if nil != err {
			s.log.Errorf("corrupt record: %s  error: %s", key, err)
			return err
		}
		return f(p)
	})
}

// Clear - remove all prisoner records, returns the number removed
func (s *LevelDB) Clear() (int, error) {
	n, err := s.prisoners.clear()
	if nil != err {
		s.log.Errorf("clear error: %s", err)
		return 0, err
	}
	s.log.Infof("cleared: %d records", n)
	return n, nil
}
