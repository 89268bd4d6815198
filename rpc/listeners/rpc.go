// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/bitmark-inc/accountinfod/background"
	"github.com/bitmark-inc/accountinfod/counter"
	"github.com/bitmark-inc/accountinfod/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName = "client_rpc"
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	log             *logger.L
	count           *counter.Counter
	server          *rpc.Server
	maxConnections  uint64
	tlsConfig       *tls.Config
	ipType          []string
	listenIPAndPort []string
	background      *background.T
}

// one accept loop per listen address
type acceptor struct {
	listen net.Listener
	r      *rpcListener
}

// NewRPC - validate the configuration and prepare a JSON RPC listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	r := rpcListener{
		log:             log,
		maxConnections:  configuration.MaximumConnections,
		listenIPAndPort: make([]string, len(configuration.Listen)),
		server:          server,
		count:           count,
		tlsConfig:       tlsConfig,
	}
	copy(r.listenIPAndPort, configuration.Listen)

	// validate all listen addresses
	var err error
	r.ipType, err = parseListenAddress(r.listenIPAndPort, r.log)
	if nil != err {
		return nil, err
	}

	return &r, nil
}

// Serve - start accepting on every listen address
//
// if any address fails to listen, those already opened are closed
func (r *rpcListener) Serve() error {
	processes := make(background.Processes, 0, len(r.listenIPAndPort))
	for i, listen := range r.listenIPAndPort {
		r.log.Infof("starting RPC server: %s", listen)
		l, err := tls.Listen(r.ipType[i], listen, r.tlsConfig)
		if err != nil {
			r.log.Errorf("rpc server listen error: %s", err)
			for _, p := range processes {
				_ = p.(*acceptor).listen.Close()
			}
			return err
		}
		processes = append(processes, &acceptor{listen: l, r: r})
	}

	r.background = background.Start(processes, nil)
	return nil
}

// Stop - close all listen sockets and wait for the accept loops
//
// connections already accepted are served until the client closes them
func (r *rpcListener) Stop() {
	r.background.Stop()
	r.background = nil
}

// Run - accept connections until shutdown
func (a *acceptor) Run(_ interface{}, shutdown <-chan struct{}) {
	go func() {
		<-shutdown
		_ = a.listen.Close()
	}()
	doServeRPC(a.listen, a.r.server, a.r.maxConnections, a.r.log, a.r.count, shutdown)
}

func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter, shutdown <-chan struct{}) {
	for {
		conn, err := listen.Accept()
		if err != nil {
			select {
			case <-shutdown:
				log.Infof("rpc server stopped: %s", listen.Addr())
			default:
				log.Errorf("rpc.server terminated: accept error: %s", err)
			}
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
}

// convert the configured addresses to listenable form and network type
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.InvalidIPAddress)
			return nil, fault.InvalidIPAddress
		}

		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			addrs[i] = "[::]" + ":" + strings.Split(listen, ":")[1]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.InvalidIPAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}
