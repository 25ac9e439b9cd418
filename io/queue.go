package io

import (
	"iter"
	"slices"
)

// Queue is the FIFO of pending input values.
type Queue struct {
	Data []int64
}

// Push appends a value to the end of the queue.
func (q *Queue) Push(value int64) {
	q.Data = append(q.Data, value)
}

// PushAll appends the values, in order, to the end of the queue.
func (q *Queue) PushAll(values []int64) {
	q.Data = append(q.Data, values...)
}

// Pop removes the value at the head of the queue.
func (q *Queue) Pop() (value int64, ok bool) {
	if q.Empty() {
		return
	}

	value = q.Data[0]
	q.Data = q.Data[1:]
	ok = true

	return
}

func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue) Len() int {
	return len(q.Data)
}

// Values returns an iterator over the pending values, head first.
func (q *Queue) Values() iter.Seq[int64] {
	return slices.Values(q.Data)
}

// Clone returns an independent copy of the queue.
func (q *Queue) Clone() Queue {
	return Queue{Data: slices.Clone(q.Data)}
}

func (q *Queue) Reset() {
	if len(q.Data) > 0 {
		q.Data = q.Data[:0]
	}
}
