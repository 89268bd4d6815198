// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package certificate - TLS setup for the client RPC listener
package certificate

import (
	"crypto/tls"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/logger"
)

// Get - verify a PEM certificate and key pair and return the TLS
// configuration with the certificate fingerprint
func Get(log *logger.L, name, certificate, key string) (*tls.Config, [32]byte, error) {
	var fin [32]byte

	keyPair, err := tls.X509KeyPair([]byte(certificate), []byte(key))
	if err != nil {
		log.Errorf("%s failed to load keypair: %v", name, err)
		return nil, fin, err
	}

	tlsConfiguration := &tls.Config{
		Certificates: []tls.Certificate{
			keyPair,
		},
	}

	fin = Fingerprint(keyPair.Certificate[0])

	return tlsConfiguration, fin, nil
}

// Fingerprint - SHA3-256 of the DER certificate
//
// openssl x509 -outform DER -in accountinfod-rpc.crt | sha3sum -a 256
func Fingerprint(certificate []byte) [32]byte {
	return sha3.Sum256(certificate)
}
