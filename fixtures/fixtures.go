// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/recordindex/record"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// Lines - sample records, two with the same name
var Lines = []string{
	"10001;Smith,John;7;1420070400;1451606400;C;204",
	"10002;Jones,Mary;3;1420070400;1483228800;A;101",
	"10003;Smith,John;0;1430000000;1440000000;B;333",
	"10004;Brown,Alice;1;1400000000;1500000000;D;456",
	"10005;Adams,Zed;7;1410000000;1420000000;C;999",
}

// Prisoners - freshly parsed copies of Lines
func Prisoners() []*record.Prisoner {
	prisoners := make([]*record.Prisoner, 0, len(Lines))
	for _, line := range Lines {
		p, err := record.Parse(line)
		if nil != err {
			panic(fmt.Sprintf("fixture: %q  error: %s", line, err))
		}
		prisoners = append(prisoners, p)
	}
	return prisoners
}

// File - Lines as the contents of an import file
func File() string {
	return strings.Join(Lines, "\n") + "\n"
}

// SetupTestLogger - start logging into the test directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the test directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
