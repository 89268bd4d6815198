// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - live connection counting for the RPC listeners
package counter

import (
	"sync/atomic"
)

// Counter - connections currently served, safe for concurrent use
type Counter uint64

// Increment - one more connection, returns the new count
func (c *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(c), 1)
}

// Decrement - one connection closed, returns the new count
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(c), ^uint64(0))
}

// Uint64 - current count
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}

// IsZero - no open connections
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
