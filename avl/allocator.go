// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[K, V any] struct {
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	up     *Node[K, V] // points to parent node
	owner  *Tree[K, V] // nil once the node is released
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // height of sub-tree rooted here, leaf = 1
}

// allocate a new leaf node
//
// released nodes are never handed out again, so a caller still
// holding one can not reach a live node through it
func (tree *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	tree.allocated += 1
	return &Node[K, V]{
		owner:  tree,
		key:    key,
		value:  value,
		height: 1,
	}
}

// clear all links and caller data from a node
func (node *Node[K, V]) clear() {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.up = nil
	node.owner = nil
	node.key = zeroKey
	node.value = zeroValue
	node.height = 0
}

// detach a node and leave it for the garbage collector
func (tree *Tree[K, V]) freeNode(node *Node[K, V]) {
	node.clear()
	tree.released += 1
}

// Allocated - total nodes created since the tree was made
func (tree *Tree[K, V]) Allocated() int {
	return tree.allocated
}

// Released - total nodes released by deletes and Free
func (tree *Tree[K, V]) Released() int {
	return tree.released
}
