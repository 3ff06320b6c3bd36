// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/bitmark-inc/recordindex/record"
)

// Store - persistent backing for a registry
type Store interface {
	Put(p *record.Prisoner) error
	Delete(id string) error
	ForEach(f func(p *record.Prisoner) error) error
}
