// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Code - numeric abort code reported to clients
type Code uint16

// abort codes, 3 is reserved and never issued
const (
	CodeNone                   Code = 0
	CodeNotFound               Code = 1
	CodeBadURLFormat           Code = 2
	CodeAdminCountTooLow       Code = 4
	CodePermissionDenied       Code = 5
	CodeAdminExists            Code = 6
	CodeAdminDoesntExist       Code = 7
	CodeCallerIsNotAccount     Code = 8
	CodePurseIsNone            Code = 9
	CodeIncorrectDepositAmount Code = 10
	CodeNoDeposit              Code = 11
	CodeInsufficientFunds      Code = 12
	CodePurseAccessDenied      Code = 13
	CodeAlreadyInstalled       Code = 14
	CodeNotInstalled           Code = 15
	CodeAmountOverflow         Code = 16
	CodeHost                   Code = 0xffff
)

var codes = map[error]Code{
	NotFound:               CodeNotFound,
	BadURLFormat:           CodeBadURLFormat,
	AdminCountTooLow:       CodeAdminCountTooLow,
	PermissionDenied:       CodePermissionDenied,
	AdminExists:            CodeAdminExists,
	AdminDoesntExist:       CodeAdminDoesntExist,
	CallerIsNotAccount:     CodeCallerIsNotAccount,
	PurseIsNone:            CodePurseIsNone,
	IncorrectDepositAmount: CodeIncorrectDepositAmount,
	NoDeposit:              CodeNoDeposit,
	InsufficientFunds:      CodeInsufficientFunds,
	PurseAccessDenied:      CodePurseAccessDenied,
	AlreadyInstalled:       CodeAlreadyInstalled,
	NotInstalled:           CodeNotInstalled,
	AmountOverflow:         CodeAmountOverflow,
}

// AbortCode - map an error to its abort code
//
// nil gives CodeNone and any error without a registered code gives
// CodeHost
func AbortCode(err error) Code {
	if nil == err {
		return CodeNone
	}
	if c, ok := codes[err]; ok {
		return c
	}
	return CodeHost
}
