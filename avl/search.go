// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/fragglet/c-algorithms-sub000/fault"
)

// LookupNode - find a node with a specific key, nil if not present
func (tree *Tree[K, V]) LookupNode(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			p = p.left
		case c > 0: // key > p.key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Lookup - find the value stored with a specific key
func (tree *Tree[K, V]) Lookup(key K) (V, error) {
	p := tree.LookupNode(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}
