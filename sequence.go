// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Sequencing layer: operations that splice a new carrier effect into the
// flow, requiring [Monad] from the carrier.

// FlatMap is monadic bind on the success channel. On failure it
// short-circuits: f is never invoked and the failure payload passes through
// unchanged. On success it defers entirely to f's wrapper.
func FlatMap[E, A, B any](m Monad, t EitherT[E, A], f func(A) EitherT[E, B]) EitherT[E, B] {
	return EitherT[E, B]{value: m.FlatMap(t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if a, ok := e.GetRight(); ok {
			return f(a).value
		}
		left, _ := e.GetLeft()
		return m.Pure(Left[E, B](left))
	})}
}

// FlatMapF is [FlatMap] composed with direct construction: f returns a bare
// carrier-of-outcome F<Either[E, B]>.
func FlatMapF[E, A, B any](m Monad, t EitherT[E, A], f func(A) Erased) EitherT[E, B] {
	return FlatMap(m, t, func(a A) EitherT[E, B] {
		return EitherT[E, B]{value: f(a)}
	})
}

// SemiflatMap lifts a non-failable carrier computation into the success
// branch: f returns a bare F<B>.
func SemiflatMap[E, A, B any](m Monad, t EitherT[E, A], f func(A) Erased) EitherT[E, B] {
	return EitherT[E, B]{value: m.FlatMap(t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if a, ok := e.GetRight(); ok {
			return m.Map(f(a), func(b Erased) Erased {
				return Right[E](b.(B))
			})
		}
		left, _ := e.GetLeft()
		return m.Pure(Left[E, B](left))
	})}
}
