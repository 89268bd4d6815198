// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the account registry
//
// JSON RPC over TLS; the services are:
//
//   Registry.SetURL, Registry.GetURL, Registry.DeleteURL,
//   Registry.SetURLForAccount, Registry.DeleteURLForAccount,
//   Registry.AddAdmin, Registry.DisableAdmin, Registry.SetDepositAmount,
//   Registry.CreatePurse, Registry.IsAdmin, Registry.Deposit,
//   Registry.Balance, Registry.Status and Node.Info
package rpc
