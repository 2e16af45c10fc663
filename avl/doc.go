// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree with the addition of parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree. After an insert or a
// delete the path back to the root is walked and every node on it is
// rebalanced by at most a double rotation, so the height of the tree
// stays within 1.45·log2(n+2).
//
// Keys are ordered by a caller supplied compare function.  Keys that
// compare equal are all kept (the tree is a multiset); a new key that
// is equal to an existing one is placed after it, but lookups and
// deletes return whichever equal node the search reaches first.
//
// Keys and values are owned by the caller, the tree only stores them.
package avl
