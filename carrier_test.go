// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eithert"
)

func TestSliceCarrierMapPreservesOrder(t *testing.T) {
	w := eithert.RightT[string, int](slcC, []any{1, 2, 3})
	got := eithert.Map(slcC, w, func(x int) int { return x * 10 })
	require.Equal(t, []any{
		eithert.Right[string](10),
		eithert.Right[string](20),
		eithert.Right[string](30),
	}, got.Value())
}

func TestSliceCarrierMap2Cartesian(t *testing.T) {
	cat := eithert.SemigroupOf(func(a, b string) string { return a + b })
	x := eithert.RightT[int, string](slcC, []any{"a", "b"})
	y := eithert.RightT[int, string](slcC, []any{"1", "2"})
	got := eithert.Combine(slcC, cat, x, y)
	require.Equal(t, []any{
		eithert.Right[int]("a1"),
		eithert.Right[int]("a2"),
		eithert.Right[int]("b1"),
		eithert.Right[int]("b2"),
	}, got.Value(), "left-major order")
}

func TestSliceCarrierEmptyAnnihilatesMap2(t *testing.T) {
	cat := eithert.SemigroupOf(func(a, b string) string { return a + b })
	x := eithert.RightT[int, string](slcC, []any{"a"})
	empty := eithert.New[int, string]([]any{})
	got := eithert.Combine(slcC, cat, x, empty)
	require.Empty(t, got.Value())
}

func TestSliceCarrierFlatMapConcatenates(t *testing.T) {
	w := eithert.RightT[string, int](slcC, []any{1, 2})
	got := eithert.FlatMap(slcC, w, func(x int) eithert.EitherT[string, int] {
		return eithert.RightT[string, int](slcC, []any{x, -x})
	})
	require.Equal(t, []any{
		eithert.Right[string](1),
		eithert.Right[string](-1),
		eithert.Right[string](2),
		eithert.Right[string](-2),
	}, got.Value())
}

// TestSliceCarrierTailRecMOrder: the worklist expansion must emit results in
// the same order a chain of FlatMaps would.
func TestSliceCarrierTailRecMOrder(t *testing.T) {
	// Each seed n < 2 branches into [continue(n+1), done(n)]; depth-first
	// expansion yields 2, 1, 0.
	got := slcC.TailRecM(0, func(seed any) any {
		n := seed.(int)
		if n < 2 {
			return []any{
				eithert.Left[any, any](n + 1),
				eithert.Right[any, any](n),
			}
		}
		return []any{eithert.Right[any, any](n)}
	})
	require.Equal(t, []any{any(2), any(1), any(0)}, got)
}

func TestSliceCarrierTailRecMStackSafety(t *testing.T) {
	got := slcC.TailRecM(0, func(seed any) any {
		n := seed.(int)
		if n < 100_000 {
			return []any{eithert.Left[any, any](n + 1)}
		}
		return []any{eithert.Right[any, any](n)}
	})
	require.Equal(t, []any{any(100_000)}, got)
}

func TestOptionCarrierAbsencePropagates(t *testing.T) {
	absent := eithert.New[string, int](eithert.None[any]())

	mapped := eithert.Map(optC, absent, func(x int) int {
		t.Fatal("map must not run on an absent carrier")
		return x
	})
	require.Equal(t, eithert.None[any](), mapped.Value())

	bound := eithert.FlatMap(optC, absent, func(x int) eithert.EitherT[string, int] {
		t.Fatal("flatMap must not run on an absent carrier")
		return absent
	})
	require.Equal(t, eithert.None[any](), bound.Value())
}

func TestOptionCarrierTailRecM(t *testing.T) {
	got := optC.TailRecM(0, func(seed any) any {
		n := seed.(int)
		if n < 100_000 {
			return eithert.Some[any](eithert.Left[any, any](n + 1))
		}
		return eithert.Some[any](eithert.Right[any, any](n))
	})
	require.Equal(t, eithert.Some[any](100_000), got)

	dropped := optC.TailRecM(0, func(seed any) any {
		n := seed.(int)
		if n == 3 {
			return eithert.None[any]()
		}
		return eithert.Some[any](eithert.Left[any, any](n + 1))
	})
	require.Equal(t, eithert.None[any](), dropped, "absence stops the loop")
}

func TestEvalCarrierDefersEffects(t *testing.T) {
	evC := eithert.EvalCarrier{}
	ran := false
	w := eithert.New[string, int](eithert.Later(func() any {
		ran = true
		return eithert.Right[string](3)
	}))

	mapped := eithert.Map(evC, w, func(x int) int { return x * 2 })
	require.False(t, ran, "mapping must not force the carrier")

	got := mapped.Value().(eithert.Eval[any]).Value().(eithert.Either[string, int])
	require.True(t, ran)
	v, ok := got.GetRight()
	require.True(t, ok)
	require.Equal(t, 6, v)
}

func TestEvalCarrierFoldLeft(t *testing.T) {
	w := eithert.New[string, int](eithert.Now(any(eithert.Right[string](5))))
	evC := eithert.EvalCarrier{}
	require.Equal(t, 15, eithert.FoldLeft(evC, w, 10, func(acc, x int) int { return acc + x }))
}

func TestEvalCarrierTraverse(t *testing.T) {
	evC := eithert.EvalCarrier{}
	w := eithert.Pure[string](evC, 3)
	got := eithert.Traverse[string, int, int](evC, optC, w, func(a int) any {
		return eithert.Some[any](a + 1)
	})
	inner, ok := got.(eithert.Option[any]).Get()
	require.True(t, ok)
	forced := inner.(eithert.EitherT[string, int]).Value().(eithert.Eval[any]).Value().(eithert.Either[string, int])
	v, ok := forced.GetRight()
	require.True(t, ok)
	require.Equal(t, 4, v)
}

func TestIdentityCarrierBasics(t *testing.T) {
	require.Equal(t, any(3), idC.Pure(3))
	require.Equal(t, any(4), idC.Map(3, func(x any) any { return x.(int) + 1 }))
	require.Equal(t, any(7), idC.Map2(3, 4, func(a, b any) any { return a.(int) + b.(int) }))
}
