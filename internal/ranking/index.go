// Package ranking provides the urgency-ordered index over task IDs.
//
// The index never owns tasks. It holds IDs with the score they had when pushed,
// and it is allowed to go stale: consumers resolve every ID against the task
// store and discard entries that no longer apply.
package ranking

import (
	"github.com/emirpasic/gods/queues/priorityqueue"
	"github.com/emirpasic/gods/utils"
)

// Entry is a ranked reference to a task.
type Entry struct {
	Score float64
	ID    int
}

// Index is a max-priority queue of entries ordered by descending Score.
// Equal scores rank the lower (earlier) ID first.
type Index struct {
	queue *priorityqueue.Queue
}

// byUrgency orders entries for the underlying min-queue: the entry that
// should come out first compares smallest.
var byUrgency utils.Comparator = func(a, b interface{}) int {
	ea := a.(Entry)
	eb := b.(Entry)
	switch {
	case ea.Score > eb.Score:
		return -1
	case ea.Score < eb.Score:
		return 1
	default:
		return utils.IntComparator(ea.ID, eb.ID)
	}
}

// New creates an empty Index.
func New() *Index {
	return &Index{queue: priorityqueue.NewWith(byUrgency)}
}

// Push adds an entry.
func (x *Index) Push(e Entry) {
	x.queue.Enqueue(e)
}

// Peek returns the highest-ranked entry without removing it.
func (x *Index) Peek() (Entry, bool) {
	v, ok := x.queue.Peek()
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Pop removes and returns the highest-ranked entry.
func (x *Index) Pop() (Entry, bool) {
	v, ok := x.queue.Dequeue()
	if !ok {
		return Entry{}, false
	}
	return v.(Entry), true
}

// Len returns the number of entries, stale ones included.
func (x *Index) Len() int {
	return x.queue.Size()
}

// Clone returns an independent copy. Draining the copy leaves x untouched.
func (x *Index) Clone() *Index {
	c := New()
	for _, v := range x.queue.Values() {
		c.queue.Enqueue(v)
	}
	return c
}

// IDs returns the set of IDs currently referenced by the index.
func (x *Index) IDs() map[int]struct{} {
	ids := make(map[int]struct{}, x.queue.Size())
	for _, v := range x.queue.Values() {
		ids[v.(Entry).ID] = struct{}{}
	}
	return ids
}

// Drain pops every entry in rank order, leaving x empty.
func (x *Index) Drain() []Entry {
	out := make([]Entry, 0, x.queue.Size())
	for {
		e, ok := x.Pop()
		if !ok {
			return out
		}
		out = append(out, e)
	}
}
