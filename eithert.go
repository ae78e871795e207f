// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// EitherT wraps a carrier-effect value containing an [Either] outcome:
// the held value is F<Either[E, A]> for some carrier effect F.
//
// EitherT never inspects the carrier's structure directly; every operation
// goes through an explicitly supplied capability interface ([Functor],
// [Monad], ...) and the corresponding [Either] operation, combined in one
// step. The wrapper is an immutable value: every transformation returns a
// new wrapper, and sharing is safe under exactly the carrier's own
// concurrency guarantees.
type EitherT[E, A any] struct {
	value Erased
}

// New wraps an existing carrier-of-outcome value.
// The argument must be a carrier value whose elements are Either[E, A];
// no capability is required to construct or hold a wrapper.
func New[E, A any](value Erased) EitherT[E, A] {
	return EitherT[E, A]{value: value}
}

// Value returns the underlying erased carrier-of-outcome, F<Either[E, A]>.
func (t EitherT[E, A]) Value() Erased {
	return t.value
}

// Pure lifts a bare success value: Pure(a) holds f.Pure(Right(a)).
func Pure[E, A any](f Applicative, a A) EitherT[E, A] {
	return EitherT[E, A]{value: f.Pure(Right[E](a))}
}

// RightT lifts a bare carrier-of-success F<A> into the wrapper.
func RightT[E, A any](f Functor, fa Erased) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map(fa, func(v Erased) Erased {
		return Right[E](v.(A))
	})}
}

// LeftT lifts a bare carrier-of-failure F<E> into the wrapper.
func LeftT[E, A any](f Functor, fe Erased) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map(fe, func(v Erased) Erased {
		return Left[E, A](v.(E))
	})}
}

// LiftF lifts a carrier computation into the success channel.
// It is [RightT] under the name generic code conventionally reaches for.
func LiftF[E, A any](f Functor, fa Erased) EitherT[E, A] {
	return RightT[E, A](f, fa)
}

// FromEither lifts a plain outcome into the carrier.
func FromEither[E, A any](f Applicative, e Either[E, A]) EitherT[E, A] {
	return EitherT[E, A]{value: f.Pure(e)}
}

// FromOption lifts an optional value, substituting the supplied failure for
// None. The failure thunk is only evaluated when needed.
func FromOption[E, A any](f Applicative, o Option[A], ifNone func() E) EitherT[E, A] {
	return EitherT[E, A]{value: f.Pure(ToEitherOption(o, ifNone))}
}

// FromOptionF lifts a carrier of optional values F<Option[A]>, substituting
// the supplied failure for each None.
func FromOptionF[E, A any](f Functor, fo Erased, ifNone func() E) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map(fo, func(v Erased) Erased {
		return ToEitherOption(v.(Option[A]), ifNone)
	})}
}

// Fold projects the wrapper to a carrier of C, F<C>, applying the matching
// branch function to each outcome.
func Fold[E, A, C any](f Functor, t EitherT[E, A], onLeft func(E) C, onRight func(A) C) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return MatchEither(v.(Either[E, A]), onLeft, onRight)
	})
}

// IsLeft returns a carrier of bool, F<bool>, reflecting the current variant.
func IsLeft[E, A any](f Functor, t EitherT[E, A]) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return v.(Either[E, A]).IsLeft()
	})
}

// IsRight returns a carrier of bool, F<bool>, reflecting the current variant.
func IsRight[E, A any](f Functor, t EitherT[E, A]) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return v.(Either[E, A]).IsRight()
	})
}

// Swap exchanges the failure and success roles.
func Swap[E, A any](f Functor, t EitherT[E, A]) EitherT[A, E] {
	return EitherT[A, E]{value: f.Map(t.value, func(v Erased) Erased {
		return SwapEither(v.(Either[E, A]))
	})}
}

// GetOrElse returns a carrier of success values F<A>, substituting the
// supplied default on failure. The default is only evaluated on the failure
// path.
func GetOrElse[E, A any](f Functor, t EitherT[E, A], orElse func() A) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return GetOrElseEither(v.(Either[E, A]), orElse)
	})
}

// GetOrElseF is [GetOrElse] with an effectful default F<A>. Evaluating the
// default is itself an effect, so it is spliced into the carrier's flow with
// FlatMap, and only on the failure path.
func GetOrElseF[E, A any](m Monad, t EitherT[E, A], orElse func() Erased) Erased {
	return m.FlatMap(t.value, func(v Erased) Erased {
		if a, ok := v.(Either[E, A]).GetRight(); ok {
			return m.Pure(a)
		}
		return orElse()
	})
}

// OrElse replaces the entire computation with the default on failure.
// On success the original is returned untouched and the default's effect is
// never evaluated.
func OrElse[E, A any](m Monad, t EitherT[E, A], orElse func() EitherT[E, A]) EitherT[E, A] {
	return EitherT[E, A]{value: m.FlatMap(t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if e.IsRight() {
			return m.Pure(e)
		}
		return orElse().value
	})}
}

// Recover converts failures matched by pf into successes; unmatched failures
// and existing successes pass through unchanged.
func Recover[E, A any](f Functor, t EitherT[E, A], pf func(E) (A, bool)) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map(t.value, func(v Erased) Erased {
		return RecoverEither(v.(Either[E, A]), pf)
	})}
}

// RecoverWith is [Recover] with a full wrapper as the replacement, so the
// recovery may itself fail. Unmatched failures pass through unchanged.
func RecoverWith[E, A any](m Monad, t EitherT[E, A], pf func(E) (EitherT[E, A], bool)) EitherT[E, A] {
	return EitherT[E, A]{value: m.FlatMap(t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if err, ok := e.GetLeft(); ok {
			if r, matched := pf(err); matched {
				return r.value
			}
		}
		return m.Pure(e)
	})}
}

// ValueOr collapses to a carrier of success values F<A>, converting failures
// with f. Equivalent to Fold(f, identity).
func ValueOr[E, A any](fr Functor, t EitherT[E, A], f func(E) A) Erased {
	return fr.Map(t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if a, ok := e.GetRight(); ok {
			return a
		}
		left, _ := e.GetLeft()
		return f(left)
	})
}

// Forall returns F<bool>: whether every outcome satisfies p.
// A failure yields true (vacuous truth).
func Forall[E, A any](f Functor, t EitherT[E, A], p func(A) bool) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return ForallEither(v.(Either[E, A]), p)
	})
}

// Exists returns F<bool>: whether the success value satisfies p.
// A failure yields false.
func Exists[E, A any](f Functor, t EitherT[E, A], p func(A) bool) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return ExistsEither(v.(Either[E, A]), p)
	})
}

// Ensure turns a success failing the predicate into a failure carrying
// onFailure(). Existing failures and predicate-passing successes are
// unchanged.
func Ensure[E, A any](f Functor, t EitherT[E, A], onFailure func() E, p func(A) bool) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map(t.value, func(v Erased) Erased {
		return EnsureEither(v.(Either[E, A]), onFailure, p)
	})}
}

// Merge collapses a wrapper whose channels share one type to F<A>.
func Merge[A any](f Functor, t EitherT[A, A]) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return MergeEither(v.(Either[A, A]))
	})
}

// ToOption discards the failure channel, producing F<Option[A]>.
func ToOption[E, A any](f Functor, t EitherT[E, A]) Erased {
	return f.Map(t.value, func(v Erased) Erased {
		return ToOptionEither(v.(Either[E, A]))
	})
}

// Combine combines two wrappers pointwise through the carrier's Map2 and the
// success type's associative append. The leftmost failure wins; carrier-level
// absence on either side propagates per the carrier's own Map2 semantics.
func Combine[E, A any](f Apply, s Semigroup, x, y EitherT[E, A]) EitherT[E, A] {
	return EitherT[E, A]{value: f.Map2(x.value, y.value, func(xv, yv Erased) Erased {
		return CombineEither(xv.(Either[E, A]), yv.(Either[E, A]), func(a, b A) A {
			return s.Combine(a, b).(A)
		})
	})}
}
