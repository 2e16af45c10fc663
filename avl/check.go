// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/fragglet/c-algorithms-sub000/fault"
)

// Check - verify the structure of the whole tree
//
// returns the first problem found: parent links, cached heights,
// balance, key order or node count
func (tree *Tree[K, V]) Check() error {
	n, _, err := tree.check(tree.root, nil)
	if nil == err && n != tree.count {
		err = fault.ErrCountMismatch
		tree.criticalf("check: %s: count: %d  reachable: %d", err, tree.count, n)
	}
	if nil != err || nil == tree.root {
		return err
	}

	// in-order sequence must never decrease
	prev := tree.First()
	for p := prev.Next(); nil != p; prev, p = p, p.Next() {
		if tree.compare(prev.key, p.key) > 0 {
			tree.report(fault.ErrOrderViolated, p)
			return fault.ErrOrderViolated
		}
	}
	return nil
}

// internal: consistency checker, returns node count and height of
// the sub-tree
func (tree *Tree[K, V]) check(p *Node[K, V], up *Node[K, V]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if p.up != up || p.owner != tree {
		tree.report(fault.ErrParentMismatch, p)
		return 0, 0, fault.ErrParentMismatch
	}
	nl, hl, err := tree.check(p.left, p)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := tree.check(p.right, p)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if p.height != h {
		tree.report(fault.ErrHeightMismatch, p)
		return 0, 0, fault.ErrHeightMismatch
	}
	if hr-hl > 1 || hl-hr > 1 {
		tree.report(fault.ErrBalanceViolated, p)
		return 0, 0, fault.ErrBalanceViolated
	}
	return 1 + nl + nr, h, nil
}

func (tree *Tree[K, V]) report(err error, p *Node[K, V]) {
	tree.criticalf("check: %s at node: %v  height: %d", err, p.key, p.height)
}

// trees without their own channel report on the PANIC channel
func (tree *Tree[K, V]) criticalf(format string, arguments ...interface{}) {
	if nil == tree.log {
		fault.Criticalf(format, arguments...)
		return
	}
	tree.log.Criticalf(format, arguments...)
}
