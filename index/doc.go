// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - prisoner registry with two AVL indexes
//
// The id index is unique and owns the records; the name index allows
// duplicate names and only refers to the same records.  A record is
// only destroyed after it has left both indexes.
package index
