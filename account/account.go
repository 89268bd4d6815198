// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/util"
)

// enumeration of supported key algorithms
const (
	// list of valid algorithms
	Nothing = iota // zero keytype is never valid
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - an identity able to call the registry
type Account struct {
	AccountInterface
}

// AccountInterface - methods common to all account types
type AccountInterface interface {
	KeyType() int
	PublicKeyBytes() []byte
	CheckSignature(message []byte, signature Signature) error
	Bytes() []byte
	String() string
	MarshalText() ([]byte, error)
	IsTesting() bool
}

// ED25519Account - for ed25519 signatures
type ED25519Account struct {
	Test      bool
	PublicKey []byte
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	if len(accountDecoded) <= checksumLength {
		return nil, fault.InvalidKeyLength
	}

	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return FromBytes(accountDecoded[:checksumStart])
}

// FromBytes - convert a key variant prefixed public key to an account
func FromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	switch keyAlgorithm {
	case ED25519:
		if len(accountBytes)-keyVariantLength != ed25519.PublicKeySize {
			return nil, fault.InvalidKeyLength
		}
		publicKey := make([]byte, ed25519.PublicKeySize)
		copy(publicKey, accountBytes[keyVariantLength:])
		account := &Account{
			AccountInterface: &ED25519Account{
				Test:      isTest,
				PublicKey: publicKey,
			},
		}
		return account, nil
	default:
		return nil, fault.InvalidKeyType
	}
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	account.AccountInterface = a.AccountInterface
	return nil
}

// Equal - exact byte equality of two accounts
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other || nil == account.AccountInterface || nil == other.AccountInterface {
		return false
	}
	return bytes.Equal(account.Bytes(), other.Bytes())
}

// ED25519
// -------

// KeyType - key type code (see enumeration above)
func (account *ED25519Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *ED25519Account) PublicKeyBytes() []byte {
	return account.PublicKey[:]
}

// CheckSignature - check the signature of a message
func (account *ED25519Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}

	if !ed25519.Verify(account.PublicKey[:], message, []byte(signature)) {
		return fault.InvalidSignature
	}
	return nil
}

// Bytes - byte slice for encoded key
func (account *ED25519Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey[:]...)
}

// String - base58 encoding of encoded key
func (account *ED25519Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account ED25519Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// IsTesting - return whether the public key is in test mode or not
func (account ED25519Account) IsTesting() bool {
	return account.Test
}
