// Package query provides composable, lazy query operators over ordered
// in-memory sequences.
//
// A Query is a re-iterable description of a sequence. No work happens until
// a terminal operator (ToSlice, All, ForEach, First, Sum, ...) pulls values;
// each terminal builds a fresh iterator chain, so a Query can be consumed any
// number of times. Operators never write into the source slice. Ordering
// operators sort a private copy.
//
// # Operators
//
// Sequence (lazy):
//
//   - Where: keep values matching a predicate
//   - Select, SelectIndexed: project each value
//   - OrderBy, OrderByDescending, OrderByMultiple, ThenBy: stable sorts
//   - Take, TakeWhile, Skip, SkipWhile: partitioning
//   - Distinct, DistinctBy, DistinctFunc: first-occurrence de-duplication
//   - Concat: join sequences
//
// Element (cardinality-sensitive):
//
//   - First, Last, Single: fail with NOT_FOUND (and MULTIPLE_MATCHES for Single)
//   - FirstOrDefault, LastOrDefault, SingleOrDefault: return an Optional
//
// Aggregate:
//
//   - Sum, Aggregate, Min, Max, Count, Any, AllMatch
//
// # Usage
//
//	red := query.From(products).Where(func(p Product) bool { return p.Color == "Red" })
//	names := query.Select(red, func(p Product) string { return p.Name }).ToSlice()
//
//	sorted := query.OrderByDescending(query.From(products), func(p Product) string { return p.Color }).
//		ThenBy(query.Asc(func(p Product) string { return p.Name })).
//		ToSlice()
//
//	p, err := query.From(products).Single(func(p Product) bool { return p.ProductID == 706 })
//	if errors.IsMultipleMatches(err) { ... }
//
// The engine is single-threaded: a Query must not be consumed while its
// source slice is being modified.
package query
