// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
	"strings"
)

// indentation for each level below the root
const indent = "   "

// PrintNested - write one line per record, highest key first, each
// indented by its depth so the tree shape reads sideways
//
// the root is level 1; with showLevels each line is prefixed by "N. ".
// print writes the record text and PrintNested ends the line.
// Returns false if the tree is empty
func (tree *Tree[R]) PrintNested(w io.Writer, print PrintFunc[R], showLevels bool) bool {
	if nil == tree.root {
		return false
	}
	printNested(w, tree.root, 1, print, showLevels)
	return true
}

func printNested[R any](w io.Writer, p *node[R], level int, print PrintFunc[R], showLevels bool) {
	if nil == p {
		return
	}
	printNested(w, p.right, level+1, print, showLevels)

	fmt.Fprint(w, strings.Repeat(indent, level-1))
	if showLevels {
		fmt.Fprintf(w, "%d. ", level)
	}
	print(w, p.record)
	fmt.Fprintln(w)

	printNested(w, p.left, level+1, print, showLevels)
}

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree with
// the balance of each node
//
// returns the maximum depth of the tree
func (tree *Tree[R]) Print(w io.Writer, label func(record *R) string) int {
	return printTree(w, tree.root, "", root, label)
}

// internal print - returns the maximum depth of the tree
func printTree[R any](w io.Writer, p *node[R], prefix string, br branch, label func(record *R) string) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, right, label)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%q %s\n", label(p.record), p.balance)
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, left, label)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
