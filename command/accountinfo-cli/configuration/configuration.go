// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"

	"github.com/bitmark-inc/accountinfod/account"
	"github.com/bitmark-inc/accountinfod/fault"
)

// Configuration - configuration file data format
type Configuration struct {
	DefaultIdentity string              `json:"default_identity"`
	TestNet         bool                `json:"testnet"`
	Connect         string              `json:"connect"`
	Identities      map[string]Identity `json:"identities"`
}

// Identity - mix of plain and encrypted data
type Identity struct {
	Description string `json:"description"`
	Account     string `json:"account"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// InfoIdentity - public view of one identity
type InfoIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	ReceiveOnly bool   `json:"receive_only"`
}

// New - empty configuration for a network
func New(testnet bool, connect string) *Configuration {
	return &Configuration{
		TestNet:    testnet,
		Connect:    connect,
		Identities: make(map[string]Identity),
	}
}

// Load - read the configuration
func Load(filename string) (*Configuration, error) {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return nil, err
	}

	f, err := os.Open(filename)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	options := &Configuration{}
	err = json.NewDecoder(f).Decode(options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

// Save - write the configuration keeping the previous one as a backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filename), 0700)
	if nil != err {
		return err
	}

	err = ioutil.WriteFile(tempFile, append(b, '\n'), 0600)
	if nil != err {
		return err
	}

	err = os.Remove(previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}
	err = os.Rename(filename, previousFile)
	if nil != err && !os.IsNotExist(err) {
		return err
	}

	return os.Rename(tempFile, filename)
}

// Identity - find identity for a given name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.IdentityNameNotFound
	}

	return &id, nil
}

// Account - find identity for a given name and convert to an account
//
// a base58 account is accepted in place of a name
func (config *Configuration) Account(name string) (*account.Account, error) {
	id, err := config.Identity(name)
	if nil == err {
		return account.FromBase58(id.Account)
	}

	a, accountErr := account.FromBase58(name)
	if nil != accountErr {
		return nil, err
	}
	return a, nil
}

// PrivateKey - decrypt the key for a given name
func (config *Configuration) PrivateKey(password string, name string) (*account.PrivateKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - store encrypted identity
func (config *Configuration) AddIdentity(name string, description string, privateKey *account.PrivateKey, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameExists
	}
	if privateKey.Test != config.TestNet {
		return fault.InvalidChain
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(privateKey.String(), secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     privateKey.Account().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}
	if "" == config.DefaultIdentity {
		config.DefaultIdentity = name
	}

	return nil
}

// AddReceiveOnlyIdentity - store public-only identity
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, acc string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.IdentityNameExists
	}

	a, err := account.FromBase58(acc)
	if nil != err {
		return err
	}
	if a.IsTesting() != config.TestNet {
		return fault.InvalidChain
	}

	config.Identities[name] = Identity{
		Description: description,
		Account:     acc,
	}

	return nil
}

// Info - identities without private data, ordered by name
func (config *Configuration) Info() []InfoIdentity {
	info := make([]InfoIdentity, 0, len(config.Identities))
	for name, id := range config.Identities {
		info = append(info, InfoIdentity{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			ReceiveOnly: "" == id.Data,
		})
	}
	sort.Slice(info, func(i, j int) bool {
		return info[i].Name < info[j].Name
	})
	return info
}
