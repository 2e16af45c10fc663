// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceViolated      = InvalidError("subtree heights differ by more than one")
	ErrComparatorRequired   = InvalidError("comparator function is required")
	ErrCountMismatch        = InvalidError("node count does not match reachable nodes")
	ErrHeightMismatch       = InvalidError("cached height is incorrect")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNodeLimitReached     = LengthError("node limit reached")
	ErrOrderViolated        = InvalidError("keys are out of order")
	ErrParentMismatch       = InvalidError("parent link is inconsistent")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
