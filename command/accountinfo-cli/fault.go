// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/accountinfod/fault"
)

// command line errors - keep in alphabetic order
var (
	ErrIncompatibleOptions = fault.InvalidError("incompatible options")
	ErrInvalidNetwork      = fault.InvalidError("invalid network")
	ErrPasswordLength      = fault.InvalidError("password must be at least 8 characters")
	ErrPurseAndDeposit     = fault.InvalidError("purse and deposit cannot both be given")
	ErrRequiredAccount     = fault.InvalidError("account is required")
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredURL         = fault.InvalidError("url is required")
)
