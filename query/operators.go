package query

// Where keeps only values that satisfy predicate, in their original order.
func Where[T any](q *Query[T], predicate func(T) bool) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &whereIter[T]{source: q.create(), fn: predicate}
		},
	}
}

// Select projects each value with fn. The result has the same length and
// order as q.
func Select[T, U any](q *Query[T], fn func(T) U) *Query[U] {
	return SelectIndexed(q, func(v T, _ int) U { return fn(v) })
}

// SelectIndexed projects each value with fn, passing the element's
// zero-based position.
func SelectIndexed[T, U any](q *Query[T], fn func(T, int) U) *Query[U] {
	return &Query[U]{
		create: func() Iterator[U] {
			return &selectIter[T, U]{source: q.create(), fn: fn}
		},
	}
}

// Take yields the first n values, or all of them when q is shorter.
// n <= 0 yields nothing.
func Take[T any](q *Query[T], n int) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &takeIter[T]{source: q.create(), remaining: n}
		},
	}
}

// TakeWhile yields values while predicate holds and stops at the first
// value for which it does not. Later matching values are not yielded.
func TakeWhile[T any](q *Query[T], predicate func(T) bool) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &takeWhileIter[T]{source: q.create(), fn: predicate}
		},
	}
}

// Skip drops the first n values and yields the rest. n <= 0 yields all.
func Skip[T any](q *Query[T], n int) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &skipIter[T]{source: q.create(), remaining: n}
		},
	}
}

// SkipWhile drops values while predicate holds, then yields every remaining
// value unconditionally.
func SkipWhile[T any](q *Query[T], predicate func(T) bool) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &skipWhileIter[T]{source: q.create(), fn: predicate}
		},
	}
}

// Distinct removes duplicate values, keeping the first occurrence of each.
func Distinct[T comparable](q *Query[T]) *Query[T] {
	return DistinctBy(q, func(v T) T { return v })
}

// DistinctBy removes values whose key has already been seen, keeping the
// first occurrence of each key.
func DistinctBy[T any, K comparable](q *Query[T], key func(T) K) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &distinctIter[T, K]{source: q.create(), key: key, seen: make(map[K]struct{})}
		},
	}
}

// DistinctFunc removes values equal (per eq) to an earlier value, keeping
// the first occurrence. It compares against every kept value, so prefer
// DistinctBy when a comparable key exists.
func DistinctFunc[T any](q *Query[T], eq func(a, b T) bool) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			return &distinctFuncIter[T]{source: q.create(), eq: eq}
		},
	}
}

// Concat joins queries sequentially.
// All values from the first query are yielded before the second, etc.
func Concat[T any](queries ...*Query[T]) *Query[T] {
	return &Query[T]{
		create: func() Iterator[T] {
			iters := make([]Iterator[T], len(queries))
			for i, q := range queries {
				iters[i] = q.create()
			}
			return &concatIter[T]{iters: iters}
		},
	}
}

// --- Fluent forms ---

// Where keeps only values that satisfy predicate.
func (q *Query[T]) Where(predicate func(T) bool) *Query[T] { return Where(q, predicate) }

// Take yields the first n values.
func (q *Query[T]) Take(n int) *Query[T] { return Take(q, n) }

// TakeWhile yields the prefix for which predicate holds.
func (q *Query[T]) TakeWhile(predicate func(T) bool) *Query[T] { return TakeWhile(q, predicate) }

// Skip drops the first n values.
func (q *Query[T]) Skip(n int) *Query[T] { return Skip(q, n) }

// SkipWhile drops the prefix for which predicate holds.
func (q *Query[T]) SkipWhile(predicate func(T) bool) *Query[T] { return SkipWhile(q, predicate) }

// DistinctFunc removes values equal to an earlier value.
func (q *Query[T]) DistinctFunc(eq func(a, b T) bool) *Query[T] { return DistinctFunc(q, eq) }

// Concat appends others after q.
func (q *Query[T]) Concat(others ...*Query[T]) *Query[T] {
	return Concat(append([]*Query[T]{q}, others...)...)
}

// --- Iterator implementations ---

type whereIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
}

func (it *whereIter[T]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if it.fn(val) {
			return val, true
		}
	}
}

func (it *whereIter[T]) Close() { it.source.Close() }

type selectIter[T, U any] struct {
	source Iterator[T]
	fn     func(T, int) U
	index  int
}

func (it *selectIter[T, U]) Next() (U, bool) {
	val, ok := it.source.Next()
	if !ok {
		var zero U
		return zero, false
	}
	out := it.fn(val, it.index)
	it.index++
	return out, true
}

func (it *selectIter[T, U]) Close() { it.source.Close() }

type takeIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *takeIter[T]) Next() (T, bool) {
	if it.remaining <= 0 {
		var zero T
		return zero, false
	}
	it.remaining--
	return it.source.Next()
}

func (it *takeIter[T]) Close() { it.source.Close() }

type takeWhileIter[T any] struct {
	source Iterator[T]
	fn     func(T) bool
	done   bool
}

func (it *takeWhileIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	val, ok := it.source.Next()
	if !ok || !it.fn(val) {
		it.done = true
		return zero, false
	}
	return val, true
}

func (it *takeWhileIter[T]) Close() { it.source.Close() }

type skipIter[T any] struct {
	source    Iterator[T]
	remaining int
}

func (it *skipIter[T]) Next() (T, bool) {
	for it.remaining > 0 {
		it.remaining--
		if val, ok := it.source.Next(); !ok {
			return val, false
		}
	}
	return it.source.Next()
}

func (it *skipIter[T]) Close() { it.source.Close() }

type skipWhileIter[T any] struct {
	source   Iterator[T]
	fn       func(T) bool
	yielding bool
}

func (it *skipWhileIter[T]) Next() (T, bool) {
	if it.yielding {
		return it.source.Next()
	}
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		if !it.fn(val) {
			it.yielding = true
			return val, true
		}
	}
}

func (it *skipWhileIter[T]) Close() { it.source.Close() }

type distinctIter[T any, K comparable] struct {
	source Iterator[T]
	key    func(T) K
	seen   map[K]struct{}
}

func (it *distinctIter[T, K]) Next() (T, bool) {
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		k := it.key(val)
		if _, dup := it.seen[k]; dup {
			continue
		}
		it.seen[k] = struct{}{}
		return val, true
	}
}

func (it *distinctIter[T, K]) Close() { it.source.Close() }

type distinctFuncIter[T any] struct {
	source Iterator[T]
	eq     func(a, b T) bool
	kept   []T
}

func (it *distinctFuncIter[T]) Next() (T, bool) {
next:
	for {
		val, ok := it.source.Next()
		if !ok {
			return val, false
		}
		for _, k := range it.kept {
			if it.eq(k, val) {
				continue next
			}
		}
		it.kept = append(it.kept, val)
		return val, true
	}
}

func (it *distinctFuncIter[T]) Close() { it.source.Close() }

type concatIter[T any] struct {
	iters []Iterator[T]
	index int
}

func (it *concatIter[T]) Next() (T, bool) {
	for it.index < len(it.iters) {
		if val, ok := it.iters[it.index].Next(); ok {
			return val, true
		}
		it.index++
	}
	var zero T
	return zero, false
}

func (it *concatIter[T]) Close() {
	for _, iter := range it.iters {
		iter.Close()
	}
}
