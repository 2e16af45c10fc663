// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// recompute the height of a node from its children, ancestors are
// not touched
func (p *Node[K, V]) updateHeight() {
	hl := p.left.Height()
	hr := p.right.Height()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
}

// put child in place of old under parent, parent == nil means the
// root of the tree
func (tree *Tree[K, V]) replaceChild(parent *Node[K, V], old *Node[K, V], child *Node[K, V]) {
	if nil == parent {
		tree.root = child
	} else if parent.left == old {
		parent.left = child
	} else {
		parent.right = child
	}
	if nil != child {
		child.up = parent
	}
}

// single RR rotation: p.right becomes the local root
//
//	   p               p1
//	  / \             /  \
//	 a   p1   →      p    c
//	    /  \        / \
//	   b    c      a   b
func (tree *Tree[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right
	tree.replaceChild(p.up, p, p1)

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.left = p
	p.up = p1

	p.updateHeight()
	p1.updateHeight()
	return p1
}

// single LL rotation: p.left becomes the local root
func (tree *Tree[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left
	tree.replaceChild(p.up, p, p1)

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.right = p
	p.up = p1

	p.updateHeight()
	p1.updateHeight()
	return p1
}

// restore the balance at a single node, returns the root of the
// possibly rotated sub-tree
func (tree *Tree[K, V]) balance(p *Node[K, V]) *Node[K, V] {
	diff := p.right.Height() - p.left.Height()

	switch {
	case diff >= 2: // right branch too high
		p1 := p.right
		if p1.left.Height() > p1.right.Height() {
			tree.rotateRight(p1) // double RL rotation
		}
		return tree.rotateLeft(p)

	case diff <= -2: // left branch too high
		p1 := p.left
		if p1.right.Height() > p1.left.Height() {
			tree.rotateLeft(p1) // double LR rotation
		}
		return tree.rotateRight(p)

	default:
		p.updateHeight()
		return p
	}
}

// walk from p up to the root balancing each node on the way
func (tree *Tree[K, V]) rebalance(p *Node[K, V]) {
	for nil != p {
		p = tree.balance(p).up
	}
}
