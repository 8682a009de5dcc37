package query

import "iter"

// Iterator provides pull-based sequential access to a sequence.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false) when exhausted.
	Next() (T, bool)
	// Close releases any resources held by the iterator.
	Close()
}

// Query is a lazy, re-iterable, ordered sequence of T.
type Query[T any] struct {
	create func() Iterator[T]
	// items is set when the query reads a slice directly; it lets
	// element operators index from the end instead of scanning.
	items []T
}

// --- Constructors ---

// From creates a query over a slice. The slice is read, never written.
func From[T any](items []T) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &sliceIter[T]{items: items}
		},
		items: items,
	}
}

// Of creates a query over the given values.
func Of[T any](items ...T) *Query[T] {
	return From(items)
}

// Empty returns a query with no elements.
func Empty[T any]() *Query[T] {
	return From[T](nil)
}

// FromSeq creates a query from a range-over-func sequence.
// The sequence must be re-iterable if the query is consumed more than once.
func FromSeq[T any](seq iter.Seq[T]) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			next, stop := iter.Pull(seq)
			return &pullIter[T]{next: next, stop: stop}
		},
	}
}

// FromFunc creates a query from a factory that produces a fresh Iterator
// for every consumption.
func FromFunc[T any](fn func() Iterator[T]) *Query[T] {
	return &Query[T]{create: fn}
}

// Iter returns the raw Iterator for this query. The caller must Close() it.
func (q *Query[T]) Iter() Iterator[T] {
	return q.create()
}

// --- Terminals ---

// All returns the query as a range-over-func sequence.
func (q *Query[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := q.create()
		defer it.Close()
		for {
			val, ok := it.Next()
			if !ok || !yield(val) {
				return
			}
		}
	}
}

// ToSlice materialises the query into a new slice. The result is never nil.
func (q *Query[T]) ToSlice() []T {
	result := make([]T, 0, len(q.items))
	for v := range q.All() {
		result = append(result, v)
	}
	return result
}

// ForEach applies action to every element in order. Actions run
// sequentially; side effects of one call are visible to the next.
func (q *Query[T]) ForEach(action func(T)) {
	for v := range q.All() {
		action(v)
	}
}

// Count returns the number of elements that satisfy every predicate.
func (q *Query[T]) Count(predicates ...func(T) bool) int {
	n := 0
	for v := range q.All() {
		if matches(v, predicates) {
			n++
		}
	}
	return n
}

// Any reports whether at least one element satisfies every predicate.
func (q *Query[T]) Any(predicates ...func(T) bool) bool {
	for v := range q.All() {
		if matches(v, predicates) {
			return true
		}
	}
	return false
}

// AllMatch reports whether every element satisfies predicate.
// It is true for an empty query.
func (q *Query[T]) AllMatch(predicate func(T) bool) bool {
	for v := range q.All() {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// ForEach applies action to every element of q in order.
func ForEach[T any](q *Query[T], action func(T)) {
	q.ForEach(action)
}

// ForEachRef applies action to a pointer to every element of items, in
// order, so the action can assign fields in place.
func ForEachRef[T any](items []T, action func(*T)) {
	for i := range items {
		action(&items[i])
	}
}

// ToSlice materialises q into a new slice.
func ToSlice[T any](q *Query[T]) []T {
	return q.ToSlice()
}

func matches[T any](v T, predicates []func(T) bool) bool {
	for _, p := range predicates {
		if !p(v) {
			return false
		}
	}
	return true
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next() (T, bool) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false
	}
	val := it.items[it.index]
	it.index++
	return val, true
}

func (it *sliceIter[T]) Close() {}

type pullIter[T any] struct {
	next func() (T, bool)
	stop func()
}

func (it *pullIter[T]) Next() (T, bool) { return it.next() }

func (it *pullIter[T]) Close() { it.stop() }
