// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eithert"
)

func TestBimap(t *testing.T) {
	r := eithert.Pure[string](idC, 3)
	got := eithert.Bimap(idC, r, strings.ToUpper, strconv.Itoa)
	require.Equal(t, eithert.Right[string]("3"), got.Value())

	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	got = eithert.Bimap(idC, l, strings.ToUpper, strconv.Itoa)
	require.Equal(t, eithert.Left[string, string]("ERR"), got.Value())
}

func TestMapSuccessChannelOnly(t *testing.T) {
	r := eithert.Pure[string](idC, 3)
	require.Equal(t, eithert.Right[string](6),
		eithert.Map(idC, r, func(x int) int { return x * 2 }).Value())

	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	require.Equal(t, l, eithert.Map(idC, l, func(x int) int { return x * 2 }))
}

func TestLeftMapFailureChannelOnly(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	got := eithert.LeftMap(idC, l, strings.ToUpper)
	require.Equal(t, eithert.Left[string, int]("ERR"), got.Value())

	r := eithert.Pure[string](idC, 3)
	require.Equal(t, eithert.Right[string](3), eithert.LeftMap(idC, r, strings.ToUpper).Value())
}

func TestTransform(t *testing.T) {
	r := eithert.Pure[string](idC, 3)
	got := eithert.Transform(idC, r, func(e eithert.Either[string, int]) eithert.Either[string, string] {
		return eithert.SwapEither(eithert.MapEither(e, strconv.Itoa))
	})
	require.Equal(t, eithert.Left[string, string]("3"), got.Value())
}

func TestSubflatMap(t *testing.T) {
	r := eithert.Pure[string](idC, 3)

	toLeft := eithert.SubflatMap(idC, r, func(x int) eithert.Either[string, int] {
		return eithert.Left[string, int]("rejected")
	})
	require.Equal(t, eithert.Left[string, int]("rejected"), toLeft.Value())

	l := eithert.FromEither(idC, eithert.Left[string, int]("err"))
	kept := eithert.SubflatMap(idC, l, func(x int) eithert.Either[string, int] {
		t.Fatal("subflatMap must not run on failure")
		return eithert.Right[string](0)
	})
	require.Equal(t, l, kept)
}

func TestApFailsFastOnFunctionSide(t *testing.T) {
	add3 := func(x int) int { return x + 3 }

	okF := eithert.Pure[string](idC, add3)
	okA := eithert.Pure[string](idC, 4)
	require.Equal(t, eithert.Right[string](7), eithert.Ap(idC, okF, okA).Value())

	badF := eithert.FromEither(idC, eithert.Left[string, func(int) int]("fn failed"))
	badA := eithert.FromEither(idC, eithert.Left[string, int]("arg failed"))
	got := eithert.Ap(idC, badF, badA)
	require.Equal(t, eithert.Left[string, int]("fn failed"), got.Value(),
		"function wrapper is inspected first in evaluation order")
}

func TestWithValidated(t *testing.T) {
	l := eithert.FromEither(idC, eithert.Left[string, int]("e1"))
	got := eithert.WithValidated(idC, l, func(v eithert.Validated[string, int]) eithert.Validated[string, int] {
		if e, ok := v.GetInvalid(); ok {
			return eithert.Invalid[string, int](e + ",e2")
		}
		return v
	})
	require.Equal(t, eithert.Left[string, int]("e1,e2"), got.Value())

	r := eithert.Pure[string](idC, 3)
	got = eithert.WithValidated(idC, r, func(v eithert.Validated[string, int]) eithert.Validated[string, int] {
		return eithert.MapValidated(v, func(x int) int { return x * 2 })
	})
	require.Equal(t, eithert.Right[string](6), got.Value())
}
