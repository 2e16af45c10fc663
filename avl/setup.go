// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/exp/constraints"

	"github.com/fragglet/c-algorithms-sub000/fault"
)

// Side - selects one of the two children of a node
type Side int

// the two sides of a node
const (
	Left Side = iota
	Right
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(K, K) int

	allocated int // nodes created
	released  int // nodes removed or freed
	nodeLimit int // maximum live nodes, zero is unlimited

	log *logger.L
}

// Option - configures a tree at creation
type Option func(*options)

type options struct {
	nodeLimit int
	log       *logger.L
}

// WithNodeLimit - bound the number of live nodes, once reached any
// further insert fails with fault.ErrNodeLimitReached
func WithNodeLimit(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.nodeLimit = n
	}
}

// WithLogger - send tree diagnostics to a logger channel
func WithLogger(log *logger.L) Option {
	return func(o *options) {
		o.log = log
	}
}

// New - create an initially empty tree ordered by compare
//
// compare(a, b) must return a negative number if a < b, zero if a
// and b are equal and a positive number if a > b
func New[K, V any](compare func(K, K) int, opts ...Option) (*Tree[K, V], error) {
	if nil == compare {
		return nil, fault.ErrComparatorRequired
	}
	return newTree[K, V](compare, opts), nil
}

// NewOrdered - create an initially empty tree for keys with a
// natural ordering
func NewOrdered[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	return newTree[K, V](compareOrdered[K], opts)
}

func newTree[K, V any](compare func(K, K) int, opts []Option) *Tree[K, V] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Tree[K, V]{
		root:      nil,
		count:     0,
		compare:   compare,
		nodeLimit: o.nodeLimit,
		log:       o.log,
	}
}

func compareOrdered[K constraints.Ordered](a K, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Free - release all nodes, leaving an empty tree
//
// any node references still held by the caller are detached
func (tree *Tree[K, V]) Free() {
	n := freeTree(tree.root)
	tree.root = nil
	tree.count = 0
	tree.released += n

	if nil != tree.log {
		tree.log.Debugf("free: released: %d nodes", n)
	}
}

// internal: post-order release, returns the number of nodes released
func freeTree[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	n := freeTree(p.left) + freeTree(p.right)
	p.clear()
	return n + 1
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	if depth == 0 {
		return []*Node[K, V]{p}
	}

	var nodes []*Node[K, V]
	if p.left != nil {
		nodes = append(nodes, p.left.GetChildrenByDepth(depth-1)...)
	}
	if p.right != nil {
		nodes = append(nodes, p.right.GetChildrenByDepth(depth-1)...)
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Child - return the left or right child of a node
func (p *Node[K, V]) Child(side Side) *Node[K, V] {
	switch side {
	case Left:
		return p.left
	case Right:
		return p.right
	default:
		return nil
	}
}

// Height - height of the sub-tree rooted at a node, zero for nil
func (p *Node[K, V]) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
