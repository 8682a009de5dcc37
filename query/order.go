package query

import (
	"cmp"
	"slices"
)

// SortKey compares two values for one level of an ordering. It returns a
// negative number when a sorts before b, zero for a tie, positive otherwise.
type SortKey[T any] func(a, b T) int

// Asc orders by key ascending.
func Asc[T any, K cmp.Ordered](key func(T) K) SortKey[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Desc orders by key descending.
func Desc[T any, K cmp.Ordered](key func(T) K) SortKey[T] {
	return func(a, b T) int { return cmp.Compare(key(b), key(a)) }
}

// AscFunc orders by an explicit comparator, for keys that are not
// cmp.Ordered (decimals, composite values).
func AscFunc[T any](compare func(a, b T) int) SortKey[T] {
	return SortKey[T](compare)
}

// DescFunc orders by the reverse of an explicit comparator.
func DescFunc[T any](compare func(a, b T) int) SortKey[T] {
	return func(a, b T) int { return compare(b, a) }
}

// Ordered is a query with an ordering applied. ThenBy and ThenByDescending
// add lower-priority tie-breakers.
type Ordered[T any] struct {
	*Query[T]
	source *Query[T]
	keys   []SortKey[T]
}

// OrderBy sorts q ascending by key. The sort is stable: values with equal
// keys keep their relative order.
func OrderBy[T any, K cmp.Ordered](q *Query[T], key func(T) K) *Ordered[T] {
	return OrderByMultiple(q, Asc(key))
}

// OrderByDescending sorts q descending by key, stably.
func OrderByDescending[T any, K cmp.Ordered](q *Query[T], key func(T) K) *Ordered[T] {
	return OrderByMultiple(q, Desc(key))
}

// OrderByMultiple sorts q stably and lexicographically: keys[0] decides
// first, each later key only breaks ties left by the earlier ones.
// With no keys the original order is kept.
func OrderByMultiple[T any](q *Query[T], keys ...SortKey[T]) *Ordered[T] {
	o := &Ordered[T]{source: q, keys: slices.Clone(keys)}
	o.Query = &Query[T]{
		create: func() Iterator[T] {
			return &sortIter[T]{source: o.source.create(), compare: o.compare}
		},
	}
	return o
}

// SortBy is the fluent form of OrderByMultiple.
func (q *Query[T]) SortBy(keys ...SortKey[T]) *Ordered[T] {
	return OrderByMultiple(q, keys...)
}

// ThenBy returns a new ordering with key appended as the lowest-priority
// tie-breaker. The receiver is unchanged.
func (o *Ordered[T]) ThenBy(key SortKey[T]) *Ordered[T] {
	keys := make([]SortKey[T], 0, len(o.keys)+1)
	keys = append(keys, o.keys...)
	keys = append(keys, key)
	return OrderByMultiple(o.source, keys...)
}

// ThenByDescending appends key reversed as the lowest-priority tie-breaker.
func (o *Ordered[T]) ThenByDescending(key SortKey[T]) *Ordered[T] {
	return o.ThenBy(func(a, b T) int { return key(b, a) })
}

func (o *Ordered[T]) compare(a, b T) int {
	for _, k := range o.keys {
		if c := k(a, b); c != 0 {
			return c
		}
	}
	return 0
}

// sortIter drains its source on the first pull and sorts a private buffer.
type sortIter[T any] struct {
	source  Iterator[T]
	compare func(a, b T) int
	buf     []T
	index   int
	loaded  bool
}

func (it *sortIter[T]) Next() (T, bool) {
	if !it.loaded {
		it.loaded = true
		for {
			val, ok := it.source.Next()
			if !ok {
				break
			}
			it.buf = append(it.buf, val)
		}
		slices.SortStableFunc(it.buf, it.compare)
	}
	if it.index >= len(it.buf) {
		var zero T
		return zero, false
	}
	val := it.buf[it.index]
	it.index++
	return val, true
}

func (it *sortIter[T]) Close() { it.source.Close() }
