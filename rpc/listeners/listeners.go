// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network listeners for the client RPC
package listeners

const (
	minConnectionCount = 1
)

// Listener - a configured set of sockets
type Listener interface {
	Serve() error
	Stop()
}
