// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/recordindex/background"
	"github.com/bitmark-inc/recordindex/watcher"
)

// changes and removals of one record file
type fileEvents interface {
	FilePath() string
	Changes() <-chan struct{}
	Removals() <-chan struct{}
}

// limit on re-imports, writes arriving while waiting are merged
const (
	reimportInterval = time.Second
	reimportBurst    = 1
)

// re-import the watched file whenever it changes
type watchProcess struct {
	log     *logger.L
	m       *metadata
	events  fileEvents
	limiter *rate.Limiter
}

func newWatchProcess(log *logger.L, m *metadata, events fileEvents) *watchProcess {
	return &watchProcess{
		log:     log,
		m:       m,
		events:  events,
		limiter: rate.NewLimiter(rate.Every(reimportInterval), reimportBurst),
	}
}

func (p *watchProcess) Run(args interface{}, shutdown <-chan struct{}) {
	log := p.log
	log.Infof("watching: %s", p.events.FilePath())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-shutdown:
			cancel()
		case <-ctx.Done():
		}
	}()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-p.events.Changes():
			if err := p.limiter.Wait(ctx); nil != err {
				break loop
			}
			log.Infof("changed: %s", p.events.FilePath())
			if err := importFile(p.m, p.events.FilePath()); nil != err {
				log.Errorf("import: %s  error: %s", p.events.FilePath(), err)
			}

		case <-p.events.Removals():
			log.Warnf("removed: %s", p.events.FilePath())
			fmt.Fprintf(p.m.e, "file removed: %s\n", p.events.FilePath())
		}
	}
	log.Info("shutting down…")
}

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.Args().First())
	if nil != err {
		return err
	}

	log := logger.New("watch")

	w, err := watcher.New(fileName, logger.New("watcher"))
	if nil != err {
		return err
	}
	defer w.Close()

	if err := importFile(m, w.FilePath()); nil != err {
		return err
	}

	if err := w.Start(); nil != err {
		return err
	}

	processes := background.Start(background.Processes{
		newWatchProcess(log, m, w),
	}, nil)

	fmt.Fprintf(m.w, "watching: %s  (interrupt to stop)\n", w.FilePath())

	// wait for CTRL-C or terminate
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	signal.Stop(ch)
	log.Infof("received signal: %v", sig)

	processes.Stop()
	return nil
}
