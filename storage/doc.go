// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk record store
//
// maintain separate pools of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = five digit prisoner identifier as ASCII
//
// Prisoners:
//
//   P ++ id                    - prisoner records
//                                data: record line (see package record)
//
// Version:
//
//   0x00 ++ "VERSION"          - database version as big endian uint32
package storage
