// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Either represents a value that is either Left (failure) or Right (success).
//
// Either is the outcome type wrapped by [EitherT]. Left always means
// failure/short-circuit and Right always means success; no operation swaps
// the roles implicitly (use [SwapEither] when that is what you want).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
// This is the universal eliminator; every other Either operation could be
// written in terms of it.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
// A Left short-circuits: f is never invoked and the failure passes through.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// BimapEither applies f to the Left value or g to the Right value.
func BimapEither[E, F, A, B any](e Either[E, A], f func(E) F, g func(A) B) Either[F, B] {
	if e.isRight {
		return Right[F](g(e.right))
	}
	return Left[F, B](f(e.left))
}

// SwapEither exchanges the failure and success roles.
// SwapEither(SwapEither(e)) is structurally equal to e.
func SwapEither[E, A any](e Either[E, A]) Either[A, E] {
	if e.isRight {
		return Left[A, E](e.right)
	}
	return Right[A](e.left)
}

// GetOrElseEither returns the Right value, or the supplied default on Left.
// The default is a thunk so it is only evaluated on the failure path.
func GetOrElseEither[E, A any](e Either[E, A], orElse func() A) A {
	if e.isRight {
		return e.right
	}
	return orElse()
}

// RecoverEither converts a matched failure into a success.
// pf reports whether it matched; an unmatched Left passes through unchanged
// and a Right is never altered.
func RecoverEither[E, A any](e Either[E, A], pf func(E) (A, bool)) Either[E, A] {
	if e.isRight {
		return e
	}
	if a, ok := pf(e.left); ok {
		return Right[E](a)
	}
	return e
}

// RecoverWithEither is like [RecoverEither] but the replacement is itself an
// Either, so the recovery may fail in turn.
func RecoverWithEither[E, A any](e Either[E, A], pf func(E) (Either[E, A], bool)) Either[E, A] {
	if e.isRight {
		return e
	}
	if r, ok := pf(e.left); ok {
		return r
	}
	return e
}

// EnsureEither turns a Right that fails the predicate into a Left carrying
// onFailure(). Existing Lefts and predicate-passing Rights are unchanged.
func EnsureEither[E, A any](e Either[E, A], onFailure func() E, p func(A) bool) Either[E, A] {
	if e.isRight && !p(e.right) {
		return Left[E, A](onFailure())
	}
	return e
}

// ExistsEither reports whether the Right value satisfies p.
// A Left yields false.
func ExistsEither[E, A any](e Either[E, A], p func(A) bool) bool {
	return e.isRight && p(e.right)
}

// ForallEither reports whether every value satisfies p.
// A Left yields true (vacuous truth).
func ForallEither[E, A any](e Either[E, A], p func(A) bool) bool {
	return !e.isRight || p(e.right)
}

// ToOptionEither discards the failure: Right becomes Some, Left becomes None.
func ToOptionEither[E, A any](e Either[E, A]) Option[A] {
	if e.isRight {
		return Some(e.right)
	}
	return None[A]()
}

// CombineEither combines two outcomes pointwise.
// The leftmost failure wins; two successes are appended with combine,
// which must be associative for [CombineEither] itself to be associative.
func CombineEither[E, A any](x, y Either[E, A], combine func(A, A) A) Either[E, A] {
	if !x.isRight {
		return x
	}
	if !y.isRight {
		return y
	}
	return Right[E](combine(x.right, y.right))
}

// ApEither applies a wrapped function to a wrapped value.
// Fail-fast: the function side is inspected first, so when both sides are
// failures the function side's failure is the one that propagates.
func ApEither[E, A, B any](ef Either[E, func(A) B], ea Either[E, A]) Either[E, B] {
	if f, ok := ef.GetRight(); ok {
		return MapEither(ea, f)
	}
	left, _ := ef.GetLeft()
	return Left[E, B](left)
}

// MergeEither collapses an Either whose channels share one type.
func MergeEither[A any](e Either[A, A]) A {
	if e.isRight {
		return e.right
	}
	return e.left
}

// EqEither builds an [Eq] witness over erased Either[E, A] values from plain
// typed comparisons on the two payload types.
func EqEither[E, A any](eqE func(E, E) bool, eqA func(A, A) bool) Eq {
	return eqEither[E, A]{eqE: eqE, eqA: eqA}
}

type eqEither[E, A any] struct {
	eqE func(E, E) bool
	eqA func(A, A) bool
}

func (q eqEither[E, A]) Eqv(x, y Erased) bool {
	xe, ye := x.(Either[E, A]), y.(Either[E, A])
	if xe.isRight != ye.isRight {
		return false
	}
	if xe.isRight {
		return q.eqA(xe.right, ye.right)
	}
	return q.eqE(xe.left, ye.left)
}

// OrderEither builds an [Order] witness over erased Either[E, A] values.
// Left sorts before Right; payloads are compared within the same variant.
func OrderEither[E, A any](cmpE func(E, E) int, cmpA func(A, A) int) Order {
	return orderEither[E, A]{cmpE: cmpE, cmpA: cmpA}
}

type orderEither[E, A any] struct {
	cmpE func(E, E) int
	cmpA func(A, A) int
}

func (o orderEither[E, A]) Compare(x, y Erased) int {
	xe, ye := x.(Either[E, A]), y.(Either[E, A])
	switch {
	case !xe.isRight && ye.isRight:
		return -1
	case xe.isRight && !ye.isRight:
		return 1
	case xe.isRight:
		return o.cmpA(xe.right, ye.right)
	default:
		return o.cmpE(xe.left, ye.left)
	}
}

func (o orderEither[E, A]) PartialCompare(x, y Erased) float64 {
	return float64(o.Compare(x, y))
}

func (o orderEither[E, A]) Eqv(x, y Erased) bool {
	return o.Compare(x, y) == 0
}

// ShowEither builds a [Show] witness over erased Either[E, A] values.
func ShowEither[E, A any](showE func(E) string, showA func(A) string) Show {
	return showEither[E, A]{showE: showE, showA: showA}
}

type showEither[E, A any] struct {
	showE func(E) string
	showA func(A) string
}

func (s showEither[E, A]) Show(a Erased) string {
	e := a.(Either[E, A])
	if e.isRight {
		return "Right(" + s.showA(e.right) + ")"
	}
	return "Left(" + s.showE(e.left) + ")"
}
