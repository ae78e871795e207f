// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Transform layer: every operation here needs only [Functor] from the
// carrier (plus [Apply] for Ap) and rewrites outcomes without introducing a
// new carrier effect.

// Bimap applies fe to the failure channel and fa to the success channel
// independently, without changing the carrier.
func Bimap[E, F, A, B any](fr Functor, t EitherT[E, A], fe func(E) F, fa func(A) B) EitherT[F, B] {
	return EitherT[F, B]{value: fr.Map(t.value, func(v Erased) Erased {
		return BimapEither(v.(Either[E, A]), fe, fa)
	})}
}

// Map applies f to the success channel. Map(t, f) = Bimap(t, identity, f).
func Map[E, A, B any](fr Functor, t EitherT[E, A], f func(A) B) EitherT[E, B] {
	return EitherT[E, B]{value: fr.Map(t.value, func(v Erased) Erased {
		return MapEither(v.(Either[E, A]), f)
	})}
}

// LeftMap applies f to the failure channel. LeftMap(t, f) = Bimap(t, f, identity).
func LeftMap[E, F, A any](fr Functor, t EitherT[E, A], f func(E) F) EitherT[F, A] {
	return EitherT[F, A]{value: fr.Map(t.value, func(v Erased) Erased {
		return MapLeftEither(v.(Either[E, A]), f)
	})}
}

// Transform rewrites each outcome wholesale with f.
func Transform[E, F, A, B any](fr Functor, t EitherT[E, A], f func(Either[E, A]) Either[F, B]) EitherT[F, B] {
	return EitherT[F, B]{value: fr.Map(t.value, func(v Erased) Erased {
		return f(v.(Either[E, A]))
	})}
}

// SubflatMap rewrites success values into either branch without changing the
// carrier shape. No new carrier effect is introduced, which is what
// distinguishes it from [FlatMap].
func SubflatMap[E, A, B any](fr Functor, t EitherT[E, A], f func(A) Either[E, B]) EitherT[E, B] {
	return EitherT[E, B]{value: fr.Map(t.value, func(v Erased) Erased {
		return FlatMapEither(v.(Either[E, A]), f)
	})}
}

// Ap applies a wrapper holding a function to a wrapper holding a value,
// composing the carrier's Map2 with the outcome's own applicative apply.
// Fail-fast: the function wrapper is inspected first in evaluation order.
func Ap[E, A, B any](f Apply, tf EitherT[E, func(A) B], ta EitherT[E, A]) EitherT[E, B] {
	return EitherT[E, B]{value: f.Map2(tf.value, ta.value, func(fv, av Erased) Erased {
		return ApEither(fv.(Either[E, func(A) B]), av.(Either[E, A]))
	})}
}

// WithValidated temporarily reinterprets each outcome as a [Validated],
// applies f, and converts back. This enables momentary error accumulation
// within an otherwise fail-fast pipeline; f decides the accumulation policy.
func WithValidated[E, F, A, B any](fr Functor, t EitherT[E, A], f func(Validated[E, A]) Validated[F, B]) EitherT[F, B] {
	return EitherT[F, B]{value: fr.Map(t.value, func(v Erased) Erased {
		return FromValidated(f(ToValidated(v.(Either[E, A]))))
	})}
}
