package queue

import (
	"container/heap"

	"github.com/pathkit/dstarlite/numeric"
)

// Options configures a Queue at construction time.
type Options struct {
	// Capacity preallocates the backing heap slice, for callers who
	// know roughly how large the open set will grow.
	Capacity int
	// Comparator controls the tolerance used to order Keys. Defaults
	// to numeric.DefaultComparator.
	Comparator numeric.Comparator
}

// Option configures a Queue via New.
type Option func(*Options)

// WithCapacity preallocates the backing heap slice to hold n entries.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithComparator overrides the tolerance used to order Keys.
func WithComparator(cmp numeric.Comparator) Option {
	return func(o *Options) {
		o.Comparator = cmp
	}
}

// defaultOptions returns the Options New uses when called with no
// overrides.
func defaultOptions() Options {
	return Options{
		Capacity:   0,
		Comparator: numeric.DefaultComparator,
	}
}

// innerHeap is the container/heap backing store: a slice of pointers
// to items, each of which remembers its own index so Swap can keep
// that bookkeeping current as the heap reorders itself, plus the
// comparator its Less uses to order Keys.
type innerHeap[T comparable] struct {
	items []*item[T]
	cmp   numeric.Comparator
}

func (h *innerHeap[T]) Len() int { return len(h.items) }

func (h *innerHeap[T]) Less(i, j int) bool {
	return h.items[i].key.LessWith(h.cmp, h.items[j].key)
}

func (h *innerHeap[T]) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *innerHeap[T]) Push(x any) {
	it := x.(*item[T])
	it.index = len(h.items)
	h.items = append(h.items, it)
}

func (h *innerHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return it
}

// Queue is the D* Lite open set: a min-heap ordered by Key, paired
// with a reverse index from value to its heap entry.
//
// Queue is not safe for concurrent use, matching the single-threaded
// contract of the planner it backs.
type Queue[T comparable] struct {
	heap  innerHeap[T]
	index map[T]*item[T]
}

// New returns an empty Queue, configured by opts.
func New[T comparable](opts ...Option) *Queue[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Queue[T]{
		heap:  innerHeap[T]{items: make([]*item[T], 0, o.Capacity), cmp: o.Comparator},
		index: make(map[T]*item[T]),
	}
}

// Len returns the number of values currently in the queue.
func (q *Queue[T]) Len() int { return len(q.heap.items) }

// Contains reports whether v is currently in the queue.
func (q *Queue[T]) Contains(v T) bool {
	_, ok := q.index[v]
	return ok
}

// Insert adds v with key k. Precondition: v is not already present;
// inserting an already-present value corrupts the reverse index, so
// callers that are unsure should use Update instead.
func (q *Queue[T]) Insert(v T, k Key) {
	it := &item[T]{value: v, key: k}
	heap.Push(&q.heap, it)
	q.index[v] = it
}

// Remove deletes the unique entry for v. Precondition: v is present;
// Remove on an absent value is a no-op.
func (q *Queue[T]) Remove(v T) {
	it, ok := q.index[v]
	if !ok {
		return
	}
	heap.Remove(&q.heap, it.index)
	delete(q.index, v)
}

// Update replaces the key of v. If v is absent, Update behaves as
// Insert.
func (q *Queue[T]) Update(v T, k Key) {
	it, ok := q.index[v]
	if !ok {
		q.Insert(v, k)
		return
	}
	it.key = k
	heap.Fix(&q.heap, it.index)
}

// Peek returns the value with the smallest key under the queue's
// comparator, along with its key. The second return is false when
// the queue is empty.
func (q *Queue[T]) Peek() (Key, T, bool) {
	if len(q.heap.items) == 0 {
		var zero T
		return Key{}, zero, false
	}
	top := q.heap.items[0]
	return top.key, top.value, true
}
