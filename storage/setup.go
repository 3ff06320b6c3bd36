// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/recordindex/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
	prisonerPrefix   = 'P'
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// LevelDB - prisoner record store
type LevelDB struct {
	sync.RWMutex
	log       *logger.L
	database  *leveldb.DB
	prisoners *PoolHandle
}

// Open - open or create the database in a directory
func Open(name string, readOnly bool) (*LevelDB, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, name, readOnly)
}

// OpenMemory - a database that is discarded on Close
func OpenMemory() (*LevelDB, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, "memory", ReadWrite)
}

// common setup for a newly opened database
func setup(db *leveldb.DB, name string, readOnly bool) (*LevelDB, error) {
	log := logger.New("storage")

	version, err := getVersion(db)
	if nil != err {
		db.Close()
		return nil, err
	}

	// ensure no database downgrade
	if version > currentDBVersion {
		db.Close()
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return nil, fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			db.Close()
			return nil, fault.ErrDatabaseClosed
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return nil, err
		}
	}

	log.Infof("opened: %s  version: 0x%x  read only: %t", name, currentDBVersion, readOnly)

	s := &LevelDB{
		log:      log,
		database: db,
	}
	s.prisoners = newPool(s, prisonerPrefix)
	return s, nil
}

// Close - close the database connection
func (s *LevelDB) Close() error {
	s.Lock()
	defer s.Unlock()
	if nil == s.database {
		return nil
	}
	err := s.database.Close()
	s.database = nil
	s.log.Info("closed")
	s.log.Flush()
	return err
}

// return the version number, zero for an empty database
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
