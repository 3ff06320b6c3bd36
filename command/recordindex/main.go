// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/recordindex/configuration"
	"github.com/bitmark-inc/recordindex/fault"
	"github.com/bitmark-inc/recordindex/index"
	"github.com/bitmark-inc/recordindex/storage"
)

type metadata struct {
	config   *configuration.Configuration
	db       *storage.LevelDB
	registry *index.Registry
	log      *logger.L
	modified bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "recordindex"
	app.Usage = "prisoner records indexed by id and by name"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "import",
			Usage:     "add records from a record file",
			ArgsUsage: "FILE",
			Action:    runImport,
		},
		{
			Name:      "export",
			Usage:     "write all records in id order",
			ArgsUsage: "[FILE]",
			Action:    runExport,
		},
		{
			Name:      "add",
			Usage:     "add one record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "line, l",
					Value: "",
					Usage: "*record `LINE` id;last,first;crime;admitted;release;block;cell",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "get",
			Usage:     "show the record for an id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*five digit `ID`",
				},
			},
			Action: runGet,
		},
		{
			Name:      "search",
			Usage:     "show every record with a name",
			ArgsUsage: "\n   (* = required)",
			Flags:     nameFlags(),
			Action:    runSearch,
		},
		{
			Name:      "delete",
			Usage:     "delete the record for an id",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id, i",
					Value: "",
					Usage: "*five digit `ID`",
				},
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: " do not ask for confirmation",
				},
			},
			Action: runDelete,
		},
		{
			Name:      "delete-name",
			Usage:     "delete a record selected by name",
			ArgsUsage: "\n   (* = required)",
			Flags: append(nameFlags(),
				cli.BoolFlag{
					Name:  "yes, y",
					Usage: " delete the first match without asking",
				},
			),
			Action: runDeleteName,
		},
		{
			Name:   "list",
			Usage:  "list all records in id order",
			Action: runList,
		},
		{
			Name:  "names",
			Usage: "show the name index as a tree",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "levels, l",
					Usage: " prefix each line with its level",
				},
			},
			Action: runNames,
		},
		{
			Name:      "filter",
			Usage:     "list records for one crime",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "crime, k",
					Value: "",
					Usage: "*crime `NAME` or number",
				},
			},
			Action: runFilter,
		},
		{
			Name:   "first",
			Usage:  "show the record with the lowest id",
			Action: runFirst,
		},
		{
			Name:   "last",
			Usage:  "show the record with the highest id",
			Action: runLast,
		},
		{
			Name:   "stats",
			Usage:  "index statistics as JSON",
			Action: runStats,
		},
		{
			Name:      "watch",
			Usage:     "import a record file again each time it changes",
			ArgsUsage: "FILE",
			Action:    runWatch,
		},
		{
			Name:  "version",
			Usage: "display recordindex version",
			Action: func(c *cli.Context) error {
				fmt.Fprintln(c.App.Writer, version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config-file"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.Get(file)
		if nil != err {
			return err
		}

		// start logging
		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}
		if err = fault.Initialise(); nil != err {
			logger.Finalise()
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", version, command)
		log.Debugf("configuration: %+v", config)

		db, err := storage.Open(config.Database, storage.ReadWrite)
		if nil != err {
			log.Criticalf("open database: %s  error: %s", config.Database, err)
			finalise(nil)
			return err
		}

		registry := index.New(logger.New("registry"), db, config.MaximumRecords)
		m := &metadata{
			config:   config,
			db:       db,
			registry: registry,
			log:      log,
			verbose:  verbose,
			e:        e,
			w:        w,
		}
		c.App.Metadata["config"] = m

		// After also runs when Before fails, so it must not see m
		abort := func(err error) error {
			delete(c.App.Metadata, "config")
			finalise(m)
			return err
		}

		if err := registry.Load(); nil != err {
			log.Criticalf("load error: %s", err)
			return abort(err)
		}

		// initial records for an empty database
		if 0 == registry.Count() && "" != config.ImportFile {
			if verbose {
				fmt.Fprintf(e, "initial import: %s\n", config.ImportFile)
			}
			if err := importFile(m, config.ImportFile); nil != err {
				log.Criticalf("initial import: %s  error: %s", config.ImportFile, err)
				return abort(err)
			}
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		delete(c.App.Metadata, "config")

		var err error
		if m.modified && "" != m.config.ExportFile {
			if m.verbose {
				fmt.Fprintf(m.e, "updating export file: %s\n", m.config.ExportFile)
			}
			err = exportFile(m, m.config.ExportFile)
		}
		finalise(m)
		return err
	}

	return app
}

// release everything opened by Before
func finalise(m *metadata) {
	if nil != m {
		m.registry.Close()
		if err := m.db.Close(); nil != err {
			m.log.Errorf("database close error: %s", err)
		}
		m.log.Info("finished")
	}
	fault.Finalise()
	logger.Finalise()
}

func nameFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "last, l",
			Value: "",
			Usage: "*last `NAME`",
		},
		cli.StringFlag{
			Name:  "first, f",
			Value: "",
			Usage: "*first `NAME`",
		},
	}
}
