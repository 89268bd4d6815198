// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the set of RPC services offered to clients
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/accountinfod/chain"
	"github.com/bitmark-inc/accountinfod/contract"
	"github.com/bitmark-inc/accountinfod/counter"
	"github.com/bitmark-inc/accountinfod/rpc/node"
	"github.com/bitmark-inc/accountinfod/rpc/registry"
	"github.com/bitmark-inc/logger"
)

// Create - register all services on a new RPC server
func Create(log *logger.L, version string, chainName string, rpcCount *counter.Counter, c contract.Registry) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(registry.New(log, c, chain.IsTesting(chainName)))
	_ = server.Register(node.New(log, start, version, chainName, rpcCount))

	return server
}
