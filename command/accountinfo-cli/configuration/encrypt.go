// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/bitmark-inc/go-argon2"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
)

// check if password unlocks data in the configuration file
func decryptIdentity(password string, identity *Identity) (*account.PrivateKey, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.NotPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	data, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.WrongPassword
	}

	return account.PrivateKeyFromBase58(data)
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}

	cipher, err := generateKey(password, salt)
	if err != nil {
		return nil, nil, err
	}

	return salt, cipher, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), salt.Bytes())
	if err != nil {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

// encrypt a string and convert to hex
func encryptData(data string, secretKey *[32]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.CryptoFailed
	}

	// a 192 bit random nonce per message
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.CryptoFailed
	}

	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	return hex.EncodeToString(ciphertext), nil
}

// decrypt a hex string and return plaintext
//
// the nonce is stored in front of the ciphertext
func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if ciphertext == "" {
		return "", fault.CryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= 24 {
		return "", fault.CryptoFailed
	}

	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return "", fault.CryptoFailed
	}

	return string(decrypted), nil
}
