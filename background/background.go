// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run a set of long lived go routines that stop
// together
package background

// the shutdown and completed channels for one background process
type shutdown struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for a started set of processes
type T struct {
	s []shutdown
}

// Process - a background process; Run must return soon after
// shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {

	register := &T{
		s: make([]shutdown, len(processes)),
	}

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go func(p Process) {
			defer close(finished)
			p.Run(args, shutdown)
		}(p)
	}
	return register
}

// Stop - stop a set of background processes and wait for all of them
func (t *T) Stop() {
	if nil == t {
		return
	}

	// shutdown all background tasks
	for _, shutdown := range t.s {
		close(shutdown.shutdown)
	}

	// wait for finished
	for _, shutdown := range t.s {
		<-shutdown.finished
	}
	t.s = nil
}
