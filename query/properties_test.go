package query

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type keyed struct {
	Key int
	Pos int
}

func genInts() *rapid.Generator[[]int] {
	return rapid.SliceOfN(rapid.IntRange(-5, 5), 0, 40)
}

func genPredicate(t *rapid.T) func(int) bool {
	threshold := rapid.IntRange(-6, 6).Draw(t, "threshold")
	return func(n int) bool { return n <= threshold }
}

func equal[T any](t *rapid.T, want, got []T) {
	t.Helper()
	require.Empty(t, cmp.Diff(want, got, cmpopts.EquateEmpty()))
}

func TestProperty_WhereIsOrderPreservingSubsequence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		p := genPredicate(t)

		got := From(src).Where(p).ToSlice()
		require.LessOrEqual(t, len(got), len(src))
		for _, v := range got {
			require.True(t, p(v))
		}
		// got must be a subsequence of src
		i := 0
		for _, v := range src {
			if i < len(got) && got[i] == v {
				i++
			}
		}
		require.Equal(t, len(got), i)
	})
}

func TestProperty_SelectPreservesLengthAndOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		got := Select(From(src), func(n int) int { return n * 3 }).ToSlice()
		require.Len(t, got, len(src))
		for i := range src {
			require.Equal(t, src[i]*3, got[i])
		}
	})
}

func TestProperty_OrderByIsStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 30).Draw(t, "keys")
		src := make([]keyed, len(keys))
		for i, k := range keys {
			src[i] = keyed{Key: k, Pos: i}
		}
		desc := rapid.Bool().Draw(t, "descending")

		var got []keyed
		if desc {
			got = OrderByDescending(From(src), func(k keyed) int { return k.Key }).ToSlice()
		} else {
			got = OrderBy(From(src), func(k keyed) int { return k.Key }).ToSlice()
		}
		require.Len(t, got, len(src))
		for i := 1; i < len(got); i++ {
			prev, cur := got[i-1], got[i]
			if prev.Key == cur.Key {
				require.Less(t, prev.Pos, cur.Pos, "equal keys must keep input order")
			} else if desc {
				require.Greater(t, prev.Key, cur.Key)
			} else {
				require.Less(t, prev.Key, cur.Key)
			}
		}
	})
}

func TestProperty_TakeSkipPartition(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		n := rapid.IntRange(0, len(src)).Draw(t, "n")
		q := From(src)
		equal(t, src, Concat(q.Take(n), q.Skip(n)).ToSlice())
	})
}

func TestProperty_TakeWhileSkipWhileSplit(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		p := genPredicate(t)
		q := From(src)
		equal(t, src, TakeWhile(q, p).Concat(SkipWhile(q, p)).ToSlice())
	})
}

func TestProperty_DistinctIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		once := Distinct(From(src)).ToSlice()
		twice := Distinct(Distinct(From(src))).ToSlice()
		equal(t, once, twice)

		seen := map[int]bool{}
		for _, v := range once {
			require.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
		for _, v := range src {
			require.True(t, seen[v], "lost %d", v)
		}
	})
}

func TestProperty_FirstLastAgreeWithWhere(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		p := genPredicate(t)
		matched := From(src).Where(p).ToSlice()

		first, firstErr := First(From(src), p)
		last, lastErr := Last(From(src), p)
		if len(matched) == 0 {
			require.Error(t, firstErr)
			require.Error(t, lastErr)
			return
		}
		require.NoError(t, firstErr)
		require.NoError(t, lastErr)
		require.Equal(t, matched[0], first)
		require.Equal(t, matched[len(matched)-1], last)
	})
}

func TestProperty_SumMatchesLoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		want := 0
		for _, v := range src {
			want += v
		}
		require.Equal(t, want, Sum(From(src), func(n int) int { return n }))
	})
}

func TestProperty_OrderByMatchesSlicesSort(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := genInts().Draw(t, "src")
		want := slices.Clone(src)
		slices.Sort(want)
		equal(t, want, OrderBy(From(src), func(n int) int { return n }).ToSlice())
	})
}
