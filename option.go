// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Option represents an optional value: Some carries a value, None is absent.
type Option[A any] struct {
	value  A
	isSome bool
}

// Some creates an Option holding a value.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, isSome: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the Option is absent.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.isSome {
		return o.value, true
	}
	var zero A
	return zero, false
}

// MatchOption pattern matches on the Option, calling onNone or onSome.
func MatchOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.isSome {
		return onSome(o.value)
	}
	return onNone()
}

// MapOption applies a function to the value, if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.isSome {
		return Some(f(o.value))
	}
	return None[B]()
}

// GetOrElseOption returns the value, or the supplied default when absent.
// The default is a thunk so it is only evaluated on the None path.
func GetOrElseOption[A any](o Option[A], orElse func() A) A {
	if o.isSome {
		return o.value
	}
	return orElse()
}

// ToEitherOption converts an Option into an Either, supplying the failure
// for the None case. The failure thunk is only evaluated when needed.
func ToEitherOption[E, A any](o Option[A], ifNone func() E) Either[E, A] {
	if o.isSome {
		return Right[E](o.value)
	}
	return Left[E, A](ifNone())
}

// EqOption lifts an element [Eq] to erased Option[Erased] carrier values.
// Two Nones are equal; a None never equals a Some.
func EqOption(inner Eq) Eq {
	return eqOption{inner: inner}
}

type eqOption struct{ inner Eq }

func (q eqOption) Eqv(x, y Erased) bool {
	xo, yo := x.(Option[Erased]), y.(Option[Erased])
	if xo.isSome != yo.isSome {
		return false
	}
	if !xo.isSome {
		return true
	}
	return q.inner.Eqv(xo.value, yo.value)
}

// OrderOption lifts an element [Order] to erased Option[Erased] carrier
// values. None sorts before Some.
func OrderOption(inner Order) Order {
	return orderOption{inner: inner}
}

type orderOption struct{ inner Order }

func (o orderOption) Compare(x, y Erased) int {
	xo, yo := x.(Option[Erased]), y.(Option[Erased])
	switch {
	case !xo.isSome && !yo.isSome:
		return 0
	case !xo.isSome:
		return -1
	case !yo.isSome:
		return 1
	default:
		return o.inner.Compare(xo.value, yo.value)
	}
}

func (o orderOption) PartialCompare(x, y Erased) float64 {
	return float64(o.Compare(x, y))
}

func (o orderOption) Eqv(x, y Erased) bool {
	return o.Compare(x, y) == 0
}

// ShowOption lifts an element [Show] to erased Option[Erased] carrier values.
func ShowOption(inner Show) Show {
	return showOption{inner: inner}
}

type showOption struct{ inner Show }

func (s showOption) Show(a Erased) string {
	o := a.(Option[Erased])
	if o.isSome {
		return "Some(" + s.inner.Show(o.value) + ")"
	}
	return "None"
}
