// Package scheduler runs deferred tasks on the caller's goroutine.
package scheduler

import (
	"container/heap"
	"time"
)

type task struct {
	at  time.Time
	seq uint64
	fn  func()
}

type taskHeap []task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h taskHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *taskHeap) Push(x any) { *h = append(*h, x.(task)) }

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = task{}
	*h = old[:n-1]
	return t
}

// Queue holds tasks ordered by deadline. Tasks with the same deadline run
// in the order they were scheduled. Not safe for concurrent use.
type Queue struct {
	tasks taskHeap
	seq   uint64
}

// New creates an empty queue
func New() *Queue {
	return &Queue{}
}

// Schedule adds fn to run once at or after at
func (q *Queue) Schedule(at time.Time, fn func()) {
	q.seq++
	heap.Push(&q.tasks, task{at: at, seq: q.seq, fn: fn})
}

// RunDue runs every task whose deadline is not after now, including tasks
// scheduled by a running task that are already due. Returns the number run.
func (q *Queue) RunDue(now time.Time) int {
	n := 0
	for len(q.tasks) > 0 && !q.tasks[0].at.After(now) {
		t := heap.Pop(&q.tasks).(task)
		t.fn()
		n++
	}
	return n
}

// Len returns the number of pending tasks
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Next returns the earliest pending deadline
func (q *Queue) Next() (time.Time, bool) {
	if len(q.tasks) == 0 {
		return time.Time{}, false
	}
	return q.tasks[0].at, true
}
