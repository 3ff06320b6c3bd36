// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// recordindex - maintain prisoner records indexed by id and by name
//
// records are kept in a LevelDB database and loaded into two
// balanced trees at start up; the command line operates on the
// trees and writes changes through to the database
//
//   recordindex --config-file=recordindex.conf import prisoners.txt
//   recordindex --config-file=recordindex.conf search --last=Smith --first=John
//   recordindex --config-file=recordindex.conf names --levels
package main
