// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/fragglet/c-algorithms-sub000/fault"
)

// Insert - insert a new node into the tree
//
// a key equal to existing keys is added as another node, placed
// after them. Returns the new node, or fault.ErrNodeLimitReached
// leaving the tree unchanged
func (tree *Tree[K, V]) Insert(key K, value V) (*Node[K, V], error) {
	if tree.nodeLimit > 0 && tree.count >= tree.nodeLimit {
		if nil != tree.log {
			tree.log.Warnf("insert: node limit: %d reached", tree.nodeLimit)
		}
		return nil, fault.ErrNodeLimitReached
	}

	up := (*Node[K, V])(nil)
	slot := &tree.root
	for p := tree.root; nil != p; p = *slot {
		up = p
		if tree.compare(key, p.key) < 0 { // key < p.key
			slot = &p.left
		} else {
			slot = &p.right
		}
	}

	node := tree.newNode(key, value)
	node.up = up
	*slot = node

	tree.rebalance(up)
	tree.count += 1

	return node, nil
}
