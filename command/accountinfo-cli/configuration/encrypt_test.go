// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		assert.Nil(t, err, "hash error")

		encrypted, err := encryptData(plainText, key)
		assert.Nil(t, err, "encrypt error")

		encrypted2, err := encryptData(plainText, key)
		assert.Nil(t, err, "encrypt error")
		assert.NotEqual(t, encrypted, encrypted2, "duplicate ciphertext")

		key2, err := generateKey(password, salt)
		assert.Nil(t, err, "generateKey error")

		decrypted, err := decryptData(encrypted, key2)
		assert.Nil(t, err, "decrypt error")
		assert.Equal(t, plainText, decrypted, "wrong plaintext")

		bad, err := generateKey("A Bad Password", salt)
		assert.Nil(t, err, "generateKey error")

		_, err = decryptData(encrypted, bad)
		assert.NotNil(t, err, "unexpected decryption success")
	}
}

func TestEncryptShortData(t *testing.T) {
	_, key, err := hashPassword("password")
	assert.Nil(t, err, "hash error")

	_, err = encryptData("short", key)
	assert.NotNil(t, err, "short data should be rejected")

	_, err = decryptData("", key)
	assert.NotNil(t, err, "empty ciphertext should be rejected")
}
