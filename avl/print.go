// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
func (tree *Tree[K, V]) Print(printData bool) int {
	return printTree(tree.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](p *Node[K, V], prefix string, br branch, printData bool) int {
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
		rd = printTree(p.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Printf("%s|------+ ", prefix)
	case left:
		fmt.Printf("%s\\------+ ", prefix)
	case right:
		fmt.Printf("%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.up {
		up = p.up.key
	}
	bf := p.right.Height() - p.left.Height()
	if printData {
		fmt.Printf("%v → %v ^%v %+2d/h%d\n", p.key, p.value, up, bf, p.height)
	} else {
		fmt.Printf("%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(p.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
