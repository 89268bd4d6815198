// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/accountinfod/counter"
	"github.com/bitmark-inc/accountinfod/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	counter *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
