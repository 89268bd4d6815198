// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError

// registry abort reasons - each is a distinct value
var (
	NotFound               = NotFoundError("url not found")
	BadURLFormat           = InvalidError("url must start with http:// or https://")
	AdminCountTooLow       = InvalidError("cannot disable the last admin")
	PermissionDenied       = PermissionError("permission denied")
	AdminExists            = ExistsError("admin already exists")
	AdminDoesntExist       = NotFoundError("admin does not exist")
	CallerIsNotAccount     = PermissionError("caller is not an account")
	PurseIsNone            = InvalidError("funding purse is required")
	IncorrectDepositAmount = InvalidError("incorrect deposit amount")
	NoDeposit              = NotFoundError("no deposit")
)

// host errors - keep in alphabetic order
var (
	AccountIsRequired      = InvalidError("account is required")
	AlreadyInitialised     = GenericError("already initialised")
	AlreadyInstalled       = ExistsError("registry already installed")
	AmountOverflow         = InvalidError("amount overflow")
	CannotDecodeAccount    = InvalidError("cannot decode account")
	CertificateFileExists  = ExistsError("certificate file already exists")
	ChecksumMismatch       = ProcessError("checksum mismatch")
	ConfigurationIsMissing = NotFoundError("configuration is missing")
	CryptoFailed           = ProcessError("crypto failed")
	DatabaseIsNotSet       = ProcessError("database is not set")
	DeployerIsRequired     = InvalidError("deployer account is required")
	EmptyCallStack         = InvalidError("empty call stack")
	ExpiredRequest         = InvalidError("request timestamp outside allowed window")
	IdentityNameExists     = ExistsError("identity name already exists")
	IdentityNameNotFound   = NotFoundError("identity name not found")
	IdentityFileExists     = ExistsError("identity file already exists")
	InsufficientFunds      = InvalidError("insufficient funds")
	InvalidAmount          = InvalidError("invalid amount")
	InvalidChain           = InvalidError("invalid chain")
	InvalidIPAddress       = InvalidError("invalid IP Address")
	InvalidKeyLength       = LengthError("invalid key length")
	InvalidKeyType         = InvalidError("invalid key type")
	InvalidPurse           = InvalidError("invalid purse")
	InvalidSignature       = InvalidError("invalid signature")
	InvalidStructPointer   = InvalidError("invalid struct pointer")
	KeyFileExists          = ExistsError("key file already exists")
	MissingParameters      = InvalidError("missing parameters")
	NotInitialised         = GenericError("not initialised")
	NotInstalled           = NotFoundError("registry not installed")
	NotPrivateKey          = InvalidError("not private key")
	NotPublicKey           = InvalidError("not public key")
	PasswordMismatch       = InvalidError("password mismatch")
	PurseAccessDenied      = PermissionError("purse is not owned by caller")
	RateLimiting           = InvalidError("rate limiting")
	TransactionInUse       = ProcessError("transaction already in use")
	WrongPassword          = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
