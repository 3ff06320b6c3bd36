// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package queue - a first-in first-out buffer of item handles
//
// Items are never inspected or released by the queue; Flush only
// forgets them.  A queue is not thread safe.
package queue

import (
	"github.com/bitmark-inc/recordindex/fault"
)

// internal constants
const (
	initialSize = 8
)

// Queue - FIFO of items of type T
type Queue[T any] struct {
	items    []T
	head     int // index of the front item in items
	capacity int // 0 => unbounded
}

// New - create an empty queue
//
// capacity limits the number of queued items; zero means no limit
func New[T any](capacity int) *Queue[T] {
	size := initialSize
	if capacity > 0 && capacity < size {
		size = capacity
	}
	return &Queue[T]{
		items:    make([]T, 0, size),
		capacity: capacity,
	}
}

// Enqueue - append an item at the rear
func (q *Queue[T]) Enqueue(item T) error {
	if q.IsFull() {
		return fault.ErrQueueFull
	}
	if q.head > 0 && len(q.items) == cap(q.items) {
		q.compact()
	}
	q.items = append(q.items, item)
	return nil
}

// Dequeue - remove and return the front item
//
// second result is false on underflow
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero // drop reference
	q.head += 1
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return item, true
}

// Front - return the front item without removing it
func (q *Queue[T]) Front() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	return q.items[q.head], true
}

// Rear - return the most recently queued item without removing it
func (q *Queue[T]) Rear() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	return q.items[len(q.items)-1], true
}

// Flush - discard all queued items, the items themselves are untouched
func (q *Queue[T]) Flush() {
	var zero T
	for i := q.head; i < len(q.items); i += 1 {
		q.items[i] = zero
	}
	q.items = q.items[:0]
	q.head = 0
}

// Count - number of queued items
func (q *Queue[T]) Count() int {
	return len(q.items) - q.head
}

// IsEmpty - true if nothing is queued
func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// IsFull - true if a bounded queue cannot take another item
func (q *Queue[T]) IsFull() bool {
	return q.capacity > 0 && q.Count() >= q.capacity
}

// move the live items down to the start of the slice
func (q *Queue[T]) compact() {
	var zero T
	n := copy(q.items, q.items[q.head:])
	for i := n; i < len(q.items); i += 1 {
		q.items[i] = zero
	}
	q.items = q.items[:n]
	q.head = 0
}
