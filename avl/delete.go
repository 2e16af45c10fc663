// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/fragglet/c-algorithms-sub000/fault"
)

// Remove - removes one node matching key from the tree
//
// returns the value of the removed node, or fault.ErrKeyNotFound if
// no node matches
func (tree *Tree[K, V]) Remove(key K) (V, error) {
	node := tree.LookupNode(key)
	if nil == node {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	value := node.value // preserve the value part
	tree.RemoveNode(node)
	return value, nil
}

// RemoveNode - removes a specific node from the tree
//
// the node is detached and must not be used afterwards.  Nil nodes
// and nodes not belonging to this tree are ignored
func (tree *Tree[K, V]) RemoveNode(node *Node[K, V]) {
	if nil == node || tree != node.owner {
		return
	}

	// the node that will take the place of the deleted one:
	// predecessor if possible, otherwise successor
	swap := (*Node[K, V])(nil)
	if nil != node.left {
		swap = node.left.last()
	} else if nil != node.right {
		swap = node.right.first()
	}

	start := (*Node[K, V])(nil)
	if nil == swap {
		// leaf: just unlink it
		start = node.up
		tree.replaceChild(node.up, node, nil)
		if nil != start {
			start.updateHeight()
		}
	} else {
		// swap has at most one child, promote it
		child := swap.left
		if nil == child {
			child = swap.right
		}
		from := swap.up
		tree.replaceChild(from, swap, child)

		if from == node {
			start = swap
		} else {
			start = from
		}

		swap.left = node.left
		swap.right = node.right
		swap.height = node.height
		if nil != swap.left {
			swap.left.up = swap
		}
		if nil != swap.right {
			swap.right.up = swap
		}
		tree.replaceChild(node.up, node, swap)
	}

	tree.freeNode(node)
	tree.count -= 1

	tree.rebalance(start)
}
