// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - JSON RPC entry points of the account registry
//
// mutating calls carry an Authorisation: the caller's account, a unix
// timestamp and an ed25519 signature over
//
//   Method|timestamp|field|field...
//
// where the fields are the call's arguments in declaration order
package registry
