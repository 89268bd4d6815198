// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/accountinfod/util"
)

// PrivateKey - signing half of an account
type PrivateKey struct {
	Test       bool
	PrivateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a fresh ed25519 key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	return newPrivateKey(rand.Reader, test)
}

func newPrivateKey(random io.Reader, test bool) (*PrivateKey, error) {
	_, priv, err := ed25519.GenerateKey(random)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: priv,
	}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte, test bool) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidKeyLength
	}
	return &PrivateKey{
		Test:       test,
		PrivateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58 - decode the form produced by String
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded := util.FromBase58(privateKeyBase58Encoded)
	if len(decoded) <= checksumLength {
		return nil, fault.NotPrivateKey
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	keyVariant, keyVariantLength := util.FromVarint64(decoded[:checksumStart])
	if 0 == keyVariantLength || keyVariant&publicKeyCode == publicKeyCode {
		return nil, fault.NotPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.InvalidKeyType
	}

	key := decoded[keyVariantLength:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.InvalidKeyLength
	}

	priv := make([]byte, ed25519.PrivateKeySize)
	copy(priv, key)

	return &PrivateKey{
		Test:       0 != keyVariant&testKeyCode,
		PrivateKey: priv,
	}, nil
}

// Account - the public account for this key
func (privateKey *PrivateKey) Account() *Account {
	publicKey := make([]byte, ed25519.PublicKeySize)
	copy(publicKey, privateKey.PrivateKey.Public().(ed25519.PublicKey))
	return &Account{
		AccountInterface: &ED25519Account{
			Test:      privateKey.Test,
			PublicKey: publicKey,
		},
	}
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.PrivateKey, message)
}

// Bytes - key variant prefixed private key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.PrivateKey...)
}

// String - base58 encoding with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert to Base58 JSON form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 JSON form to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	p, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *p
	return nil
}
