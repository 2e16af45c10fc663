// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
//
// the parent links are followed rather than comparing keys so that
// runs of equal keys are visited one by one
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	for up := p.up; up != nil; p, up = up, up.up {
		if up.left == p {
			return up
		}
	}
	return nil
}

// Prev - given a node, return the node with the next lowest key
// value or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	for up := p.up; up != nil; p, up = up, up.up {
		if up.right == p {
			return up
		}
	}
	return nil
}

// ToArray - all keys in ascending order, nil for an empty tree
func (tree *Tree[K, V]) ToArray() []K {
	if nil == tree.root {
		return nil
	}
	keys := make([]K, 0, tree.count)
	for p := tree.First(); nil != p; p = p.Next() {
		keys = append(keys, p.key)
	}
	return keys
}
