// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eithert"
)

var (
	idC  = eithert.IdentityCarrier{}
	optC = eithert.OptionCarrier{}
)

func TestPureHoldsRight(t *testing.T) {
	w := eithert.Pure[string](idC, 3)
	require.Equal(t, eithert.Right[string](3), w.Value())
}

func TestRightTLeftT(t *testing.T) {
	r := eithert.RightT[string, int](optC, eithert.Some[any](3))
	require.Equal(t, eithert.Some[any](eithert.Right[string](3)), r.Value())

	l := eithert.LeftT[string, int](optC, eithert.Some[any]("e"))
	require.Equal(t, eithert.Some[any](eithert.Left[string, int]("e")), l.Value())
}

func TestLiftF(t *testing.T) {
	w := eithert.LiftF[string, int](idC, 7)
	require.Equal(t, eithert.Right[string](7), w.Value())
}

func TestFromEither(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("nope"))
	require.Equal(t, eithert.Left[string, int]("nope"), w.Value())
}

func TestFromOption(t *testing.T) {
	some := eithert.FromOption(idC, eithert.Some(3), func() string { return "empty" })
	require.Equal(t, eithert.Right[string](3), some.Value())

	none := eithert.FromOption(idC, eithert.None[int](), func() string { return "empty" })
	require.Equal(t, eithert.Left[string, int]("empty"), none.Value())
}

func TestFromOptionFailureThunkLazy(t *testing.T) {
	called := false
	_ = eithert.FromOption(idC, eithert.Some(3), func() string {
		called = true
		return "empty"
	})
	require.False(t, called, "failure thunk must not run on the Some path")
}

func TestFromOptionF(t *testing.T) {
	w := eithert.FromOptionF[string, int](optC, eithert.Some[any](eithert.None[int]()), func() string { return "empty" })
	require.Equal(t, eithert.Some[any](eithert.Left[string, int]("empty")), w.Value())
}

func TestFold(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	got := eithert.Fold(idC, w,
		func(e string) int { return -1 },
		func(a int) int { return a },
	)
	require.Equal(t, -1, got)
}

func TestIsLeftIsRight(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, true, eithert.IsLeft(idC, l))
	require.Equal(t, false, eithert.IsRight(idC, l))
}

func TestSwapIdempotence(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, w, eithert.Swap(idC, eithert.Swap(idC, w)))

	r := eithert.Pure[string](idC, 4)
	require.Equal(t, r, eithert.Swap(idC, eithert.Swap(idC, r)))
}

func TestGetOrElse(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, 9, eithert.GetOrElse(idC, l, func() int { return 9 }))

	r := eithert.Pure[string](idC, 4)
	require.Equal(t, 4, eithert.GetOrElse(idC, r, func() int {
		t.Fatal("default must not be evaluated on success")
		return 0
	}))
}

func TestGetOrElseF(t *testing.T) {
	l := eithert.LeftT[string, int](optC, eithert.Some[any]("err"))
	got := eithert.GetOrElseF(optC, l, func() any { return eithert.Some[any](9) })
	require.Equal(t, eithert.Some[any](9), got)

	r := eithert.RightT[string, int](optC, eithert.Some[any](4))
	got = eithert.GetOrElseF(optC, r, func() any {
		t.Fatal("effectful default must not be spliced on success")
		return nil
	})
	require.Equal(t, eithert.Some[any](4), got)
}

func TestOrElse(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	replaced := eithert.OrElse(idC, l, func() eithert.EitherT[string, int] {
		return eithert.Pure[string](idC, 10)
	})
	require.Equal(t, eithert.Right[string](10), replaced.Value())

	r := eithert.Pure[string](idC, 4)
	kept := eithert.OrElse(idC, r, func() eithert.EitherT[string, int] {
		t.Fatal("default wrapper must not be built on success")
		return r
	})
	require.Equal(t, r, kept)
}

func TestRecover(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("timeout"))

	matched := eithert.Recover(idC, w, func(e string) (int, bool) {
		if e == "timeout" {
			return 0, true
		}
		return 0, false
	})
	require.Equal(t, eithert.Right[string](0), matched.Value())

	unmatched := eithert.Recover(idC, w, func(e string) (int, bool) { return 0, false })
	require.Equal(t, w, unmatched, "unmatched failure must pass through unchanged")

	success := eithert.Pure[string](idC, 8)
	untouched := eithert.Recover(idC, success, func(e string) (int, bool) { return 0, true })
	require.Equal(t, success, untouched, "success values are never altered")
}

func TestRecoverWith(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("timeout"))

	matched := eithert.RecoverWith(idC, w, func(e string) (eithert.EitherT[string, int], bool) {
		return eithert.FromEither(idC, eithert.Left[string, int]("fatal")), true
	})
	require.Equal(t, eithert.Left[string, int]("fatal"), matched.Value(),
		"replacement wrapper may itself fail")

	unmatched := eithert.RecoverWith(idC, w, func(e string) (eithert.EitherT[string, int], bool) {
		return eithert.EitherT[string, int]{}, false
	})
	require.Equal(t, w, unmatched)
}

func TestValueOr(t *testing.T) {
	w := eithert.FromEither(idC, eithert.Left[string, int]("abc"))
	require.Equal(t, 3, eithert.ValueOr(idC, w, func(e string) int { return len(e) }))

	r := eithert.Pure[string](idC, 5)
	require.Equal(t, 5, eithert.ValueOr(idC, r, func(e string) int { return 0 }))
}

func TestForallExists(t *testing.T) {
	over10 := func(x int) bool { return x > 10 }

	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, true, eithert.Forall(idC, l, over10), "failure is vacuously true")
	require.Equal(t, false, eithert.Exists(idC, l, over10))

	r := eithert.Pure[string](idC, 20)
	require.Equal(t, true, eithert.Forall(idC, r, over10))
	require.Equal(t, true, eithert.Exists(idC, r, over10))
}

func TestEnsure(t *testing.T) {
	over10 := func(x int) bool { return x > 10 }
	tooSmall := func() string { return "too small" }

	small := eithert.Pure[string](idC, 5)
	require.Equal(t, eithert.Left[string, int]("too small"),
		eithert.Ensure(idC, small, tooSmall, over10).Value())

	big := eithert.Pure[string](idC, 20)
	require.Equal(t, eithert.Right[string](20),
		eithert.Ensure(idC, big, tooSmall, over10).Value())

	failed := eithert.FromEither(idC, eithert.Left[string, int]("prior"))
	require.Equal(t, failed, eithert.Ensure(idC, failed, tooSmall, over10),
		"existing failures are unchanged")
}

func TestMerge(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, string]("a"))
	require.Equal(t, "a", eithert.Merge(idC, l))

	r := eithert.FromEither(idC, eithert.Right[string]("b"))
	require.Equal(t, "b", eithert.Merge(idC, r))
}

func TestToOption(t *testing.T) {
	r := eithert.Pure[string](idC, 3)
	require.Equal(t, eithert.Some(3), eithert.ToOption(idC, r))

	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, eithert.None[int](), eithert.ToOption(idC, l))
}

// TestCombinePrecedence pins the full precedence table for Combine over the
// optional-single-value carrier: leftmost failure wins, carrier-level
// absence on either side annihilates.
func TestCombinePrecedence(t *testing.T) {
	sum := eithert.SemigroupOf(func(a, b int) int { return a + b })

	leftOf := func(e string) eithert.EitherT[string, int] {
		return eithert.LeftT[string, int](optC, eithert.Some[any](e))
	}
	rightOf := func(a int) eithert.EitherT[string, int] {
		return eithert.RightT[string, int](optC, eithert.Some[any](a))
	}
	absent := eithert.New[string, int](eithert.None[any]())

	tests := []struct {
		name string
		x, y eithert.EitherT[string, int]
		want any
	}{
		{"left/left keeps first", leftOf("e1"), leftOf("e2"), eithert.Some[any](eithert.Left[string, int]("e1"))},
		{"left/right keeps failure", leftOf("e1"), rightOf(3), eithert.Some[any](eithert.Left[string, int]("e1"))},
		{"right/left keeps failure", rightOf(3), leftOf("e1"), eithert.Some[any](eithert.Left[string, int]("e1"))},
		{"right/right appends", rightOf(3), rightOf(4), eithert.Some[any](eithert.Right[string](7))},
		{"left/absent is absent", leftOf("e1"), absent, eithert.None[any]()},
		{"right/absent is absent", rightOf(3), absent, eithert.None[any]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := eithert.Combine(optC, sum, tt.x, tt.y)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}
