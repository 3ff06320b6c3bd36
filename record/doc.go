// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - prisoner records and their text line format
//
// one record per line:
//
//   id;last,first;crime;admitted;release;block;cell
//
// id is five digits, crime is the numeric Crime value, admitted and
// release are Unix seconds, block is a single letter and cell is a
// three digit number
package record
