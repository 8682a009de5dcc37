package query

import (
	"cmp"

	"github.com/kbukum/querykit/errors"
)

// Number is the set of primitive numeric types Sum can fold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum adds selector(v) over every element. An empty query sums to zero.
func Sum[T any, N Number](q *Query[T], selector func(T) N) N {
	var total N
	for v := range q.All() {
		total += selector(v)
	}
	return total
}

// Aggregate folds every element into an accumulator starting from seed.
// An empty query returns seed; use it with the additive identity for
// numeric types Sum cannot handle (e.g. decimal.Zero).
func Aggregate[T, A any](q *Query[T], seed A, fold func(A, T) A) A {
	acc := seed
	for v := range q.All() {
		acc = fold(acc, v)
	}
	return acc
}

// Min returns the smallest selected key. It fails with NOT_FOUND on an
// empty query.
func Min[T any, K cmp.Ordered](q *Query[T], selector func(T) K) (K, error) {
	return extreme(q, selector, -1)
}

// Max returns the largest selected key. It fails with NOT_FOUND on an
// empty query.
func Max[T any, K cmp.Ordered](q *Query[T], selector func(T) K) (K, error) {
	return extreme(q, selector, 1)
}

func extreme[T any, K cmp.Ordered](q *Query[T], selector func(T) K, want int) (K, error) {
	var best K
	seen := false
	for v := range q.All() {
		k := selector(v)
		if !seen || cmp.Compare(k, best) == want {
			best = k
			seen = true
		}
	}
	if !seen {
		return best, errors.NotFound(elementResource)
	}
	return best, nil
}

// Count returns the number of elements in q satisfying every predicate.
func Count[T any](q *Query[T], predicates ...func(T) bool) int {
	return q.Count(predicates...)
}
