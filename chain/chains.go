// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a node can serve
package chain

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Bitmark, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - accounts on this chain use test keys
func IsTesting(name string) bool {
	return Bitmark != name
}
