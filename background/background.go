// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - start and stop a set of long running goroutines
package background

import (
	"sync"
)

// Process - a long running task
//
// Run must return soon after shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for a running set of processes
type T struct {
	shutdown chan struct{}
	finished sync.WaitGroup
	once     sync.Once
}

// Start - run each process in its own goroutine
func Start(processes Processes, args interface{}) *T {

	t := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		t.finished.Add(1)
		go func(p Process) {
			defer t.finished.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Stop - signal all processes and wait for them to return
func (t *T) Stop() {
	if nil == t {
		return
	}
	t.once.Do(func() {
		close(t.shutdown)
	})
	t.finished.Wait()
}
