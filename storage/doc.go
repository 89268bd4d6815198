// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk registry state
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through the single Transaction: they are buffered in
// a LevelDB batch and become visible to other readers only on Commit.
// Reads inside the transaction see its own pending writes.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. N         = big endian uint64 (8 bytes)
// 4. identity  = base58 account string
// 5. purse     = purse name string
//
// Registry:
//
//   A ++ identity              - admin flag
//                                data: 0x01 active, 0x00 disabled
//   S ++ name                  - scalar values
//                                data: N
//   U ++ identity              - published url, empty means deleted
//                                data: url bytes
//   D ++ identity              - escrowed deposit
//                                data: N
//
// Ledger:
//
//   B ++ purse                 - purse balance
//                                data: N
//   O ++ purse                 - owner of a temporary purse
//                                data: identity
package storage
