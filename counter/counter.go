// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - event counters for statistics reporting
package counter

import (
	"sync/atomic"
)

// Counter - a monotonic event counter, the zero value is ready to use
//
// safe to read from another go routine while the owner is counting
type Counter struct {
	n atomic.Uint64
}

// Increment - count one event, returns new value
func (c *Counter) Increment() uint64 {
	return c.n.Add(1)
}

// Add - count several events at once, returns new value
func (c *Counter) Add(delta uint64) uint64 {
	return c.n.Add(delta)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.n.Load()
}

// Reset - set back to zero, returns the value before the reset
func (c *Counter) Reset() uint64 {
	return c.n.Swap(0)
}

// IsZero - true if nothing counted since creation or last reset
func (c *Counter) IsZero() bool {
	return 0 == c.n.Load()
}
