// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/terminal"
)

// interactive yes/no questions on the controlling terminal
type console struct {
	tty      *os.File
	oldState *terminal.State
	terminal *terminal.Terminal
}

// open the controlling terminal in raw mode
func openConsole(prompt string) (*console, error) {
	ttyFd, err := os.OpenFile("/dev/tty", os.O_RDWR, os.ModePerm)
	if nil != err {
		return nil, err
	}

	oldState, err := terminal.MakeRaw(int(ttyFd.Fd()))
	if nil != err {
		ttyFd.Close()
		return nil, err
	}

	return &console{
		tty:      ttyFd,
		oldState: oldState,
		terminal: terminal.NewTerminal(ttyFd, prompt),
	}, nil
}

// show the text then read y or n
//
// anything that cannot be read counts as no
func (c *console) confirm(text string) bool {
	fmt.Fprintf(c.terminal, "\n%s\n", text)
	for {
		answer, err := c.terminal.ReadLine()
		if nil != err {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintf(c.terminal, "please answer y or n\n")
		}
	}
}

// restore the terminal
func (c *console) Close() {
	terminal.Restore(int(c.tty.Fd()), c.oldState)
	c.tty.Close()
}
