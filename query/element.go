package query

import "github.com/kbukum/querykit/errors"

const elementResource = "element"

// First returns the earliest element satisfying every predicate (or the
// earliest element when none are given). It fails with NOT_FOUND when no
// element qualifies.
func First[T any](q *Query[T], predicates ...func(T) bool) (T, error) {
	if v, ok := FirstOrDefault(q, predicates...).Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.NotFound(elementResource)
}

// FirstOrDefault is First, returning an absent Optional instead of failing.
func FirstOrDefault[T any](q *Query[T], predicates ...func(T) bool) Optional[T] {
	for v := range q.All() {
		if matches(v, predicates) {
			return Some(v)
		}
	}
	return None[T]()
}

// Last returns the latest element satisfying every predicate. It fails
// with NOT_FOUND when no element qualifies.
func Last[T any](q *Query[T], predicates ...func(T) bool) (T, error) {
	if v, ok := LastOrDefault(q, predicates...).Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.NotFound(elementResource)
}

// LastOrDefault is Last, returning an absent Optional instead of failing.
// Slice-backed queries are scanned from the end.
func LastOrDefault[T any](q *Query[T], predicates ...func(T) bool) Optional[T] {
	if q.items != nil {
		for i := len(q.items) - 1; i >= 0; i-- {
			if matches(q.items[i], predicates) {
				return Some(q.items[i])
			}
		}
		return None[T]()
	}
	found := None[T]()
	for v := range q.All() {
		if matches(v, predicates) {
			found = Some(v)
		}
	}
	return found
}

// Single returns the only element satisfying every predicate. It fails with
// NOT_FOUND when none qualify and MULTIPLE_MATCHES when more than one does.
func Single[T any](q *Query[T], predicates ...func(T) bool) (T, error) {
	opt, err := SingleOrDefault(q, predicates...)
	if err != nil {
		var zero T
		return zero, err
	}
	if v, ok := opt.Get(); ok {
		return v, nil
	}
	var zero T
	return zero, errors.NotFound(elementResource)
}

// SingleOrDefault is Single, returning an absent Optional when nothing
// qualifies. More than one match is still a MULTIPLE_MATCHES failure.
// The scan stops at the second match.
func SingleOrDefault[T any](q *Query[T], predicates ...func(T) bool) (Optional[T], error) {
	found := None[T]()
	for v := range q.All() {
		if !matches(v, predicates) {
			continue
		}
		if found.IsPresent() {
			return None[T](), errors.MultipleMatches(elementResource, 2)
		}
		found = Some(v)
	}
	return found, nil
}

// ElementAt returns the element at zero-based index. It fails with
// NOT_FOUND when index is out of range.
func ElementAt[T any](q *Query[T], index int) (T, error) {
	if index >= 0 {
		if v, ok := FirstOrDefault(Skip(q, index)).Get(); ok {
			return v, nil
		}
	}
	var zero T
	return zero, errors.NotFound(elementResource).WithDetail("index", index)
}

// --- Fluent forms ---

// First returns the earliest qualifying element or NOT_FOUND.
func (q *Query[T]) First(predicates ...func(T) bool) (T, error) { return First(q, predicates...) }

// FirstOrDefault returns the earliest qualifying element, if any.
func (q *Query[T]) FirstOrDefault(predicates ...func(T) bool) Optional[T] {
	return FirstOrDefault(q, predicates...)
}

// Last returns the latest qualifying element or NOT_FOUND.
func (q *Query[T]) Last(predicates ...func(T) bool) (T, error) { return Last(q, predicates...) }

// LastOrDefault returns the latest qualifying element, if any.
func (q *Query[T]) LastOrDefault(predicates ...func(T) bool) Optional[T] {
	return LastOrDefault(q, predicates...)
}

// Single returns the sole qualifying element, NOT_FOUND or MULTIPLE_MATCHES.
func (q *Query[T]) Single(predicates ...func(T) bool) (T, error) { return Single(q, predicates...) }

// SingleOrDefault returns the sole qualifying element, if any, or MULTIPLE_MATCHES.
func (q *Query[T]) SingleOrDefault(predicates ...func(T) bool) (Optional[T], error) {
	return SingleOrDefault(q, predicates...)
}

// ElementAt returns the element at index or NOT_FOUND.
func (q *Query[T]) ElementAt(index int) (T, error) { return ElementAt(q, index) }
