// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Derived capability instances: thin adapters that make the wrapper itself
// satisfy a capability whenever the carrier satisfies what the adapter
// needs. One constructor per capability, each taking exactly the carrier
// capability it requires; selection is by explicit caller choice, never by
// implicit resolution.
//
// Polymorphic instances (Functor, Monad, MonadError, SemigroupK, Bifunctor,
// Bitraversable) operate on erased wrappers whose element slots are Erased:
// EitherT[E, Erased] for the one-channel instances, EitherT[Erased, Erased]
// for the two-channel ones. Those are the natural citizens of generic
// capability-level code, which cannot know the element types anyway.
// Monomorphic instances (Semigroup, Monoid, Eq, PartialOrder, Order, Show)
// keep both element types.

// DeriveFunctor derives the wrapper-level [Functor] from the carrier's.
func DeriveFunctor[E any](f Functor) Functor {
	return eitherTFunctor[E]{f: f}
}

type eitherTFunctor[E any] struct{ f Functor }

func (d eitherTFunctor[E]) Map(fa Erased, fn func(Erased) Erased) Erased {
	return Map(d.f, fa.(EitherT[E, Erased]), fn)
}

// DeriveMonad derives the wrapper-level [Monad] from the carrier's.
func DeriveMonad[E any](m Monad) Monad {
	return eitherTMonad[E]{m: m}
}

type eitherTMonad[E any] struct{ m Monad }

func (d eitherTMonad[E]) Map(fa Erased, fn func(Erased) Erased) Erased {
	return Map(d.m, fa.(EitherT[E, Erased]), fn)
}

func (d eitherTMonad[E]) Map2(fa, fb Erased, fn func(Erased, Erased) Erased) Erased {
	ta, tb := fa.(EitherT[E, Erased]), fb.(EitherT[E, Erased])
	return EitherT[E, Erased]{value: d.m.Map2(ta.value, tb.value, func(xv, yv Erased) Erased {
		lifted := MapEither(xv.(Either[E, Erased]), func(x Erased) func(Erased) Erased {
			return func(y Erased) Erased { return fn(x, y) }
		})
		return ApEither(lifted, yv.(Either[E, Erased]))
	})}
}

func (d eitherTMonad[E]) Pure(a Erased) Erased {
	return Pure[E](d.m, a)
}

func (d eitherTMonad[E]) FlatMap(fa Erased, fn func(Erased) Erased) Erased {
	return FlatMap(d.m, fa.(EitherT[E, Erased]), func(a Erased) EitherT[E, Erased] {
		return fn(a).(EitherT[E, Erased])
	})
}

// TailRecM keeps long bind chains stack-safe by converting the three-way
// carrier-of-outcome-of-(seed-or-done) into the carrier's own two-way
// recursion signal and looping inside the carrier's TailRecM:
//
//	Left(e)         -> done, failed outcome
//	Right(Left(a))  -> continue with seed a
//	Right(Right(b)) -> done, successful outcome
func (d eitherTMonad[E]) TailRecM(seed Erased, fn func(Erased) Erased) Erased {
	value := d.m.TailRecM(seed, func(a Erased) Erased {
		step := fn(a).(EitherT[E, Erased])
		return d.m.Map(step.value, func(v Erased) Erased {
			e := v.(Either[E, Erased])
			if failure, ok := e.GetLeft(); ok {
				return Right[Erased, Erased](Left[E, Erased](failure))
			}
			r, _ := e.GetRight()
			inner := r.(Either[Erased, Erased])
			if next, ok := inner.GetLeft(); ok {
				return Left[Erased, Erased](next)
			}
			b, _ := inner.GetRight()
			return Right[Erased, Erased](Right[E, Erased](b))
		})
	})
	return EitherT[E, Erased]{value: value}
}

// DeriveMonadError derives the wrapper-level [MonadError] from the carrier's
// [Monad]. The failure channel is the wrapper's own Left; the carrier needs
// no error capability of its own.
func DeriveMonadError[E any](m Monad) MonadError {
	return eitherTMonadError[E]{eitherTMonad[E]{m: m}}
}

type eitherTMonadError[E any] struct{ eitherTMonad[E] }

func (d eitherTMonadError[E]) RaiseError(e Erased) Erased {
	return EitherT[E, Erased]{value: d.m.Pure(Left[E, Erased](e.(E)))}
}

func (d eitherTMonadError[E]) HandleError(fa Erased, fn func(Erased) Erased) Erased {
	return Recover(d.m, fa.(EitherT[E, Erased]), func(err E) (Erased, bool) {
		return fn(err), true
	})
}

func (d eitherTMonadError[E]) HandleErrorWith(fa Erased, fn func(Erased) Erased) Erased {
	return RecoverWith(d.m, fa.(EitherT[E, Erased]), func(err E) (EitherT[E, Erased], bool) {
		return fn(err).(EitherT[E, Erased]), true
	})
}

// Attempt materializes the outcome as an always-succeeding wrapper: the
// success slot of the result holds the original Either[E, Erased].
func (d eitherTMonadError[E]) Attempt(fa Erased) Erased {
	t := fa.(EitherT[E, Erased])
	return EitherT[E, Erased]{value: d.m.Map(t.value, func(v Erased) Erased {
		return Right[E, Erased](v)
	})}
}

// DeriveSemigroupK derives choice-like combination: CombineK returns x
// unless x is a failure, in which case it returns y. The splice goes through
// the carrier's FlatMap, so y's effect is only triggered when x failed.
func DeriveSemigroupK[E any](m Monad) SemigroupK {
	return eitherTSemigroupK[E]{m: m}
}

type eitherTSemigroupK[E any] struct{ m Monad }

func (d eitherTSemigroupK[E]) CombineK(x, y Erased) Erased {
	return OrElse(d.m, x.(EitherT[E, Erased]), func() EitherT[E, Erased] {
		return y.(EitherT[E, Erased])
	})
}

// DeriveSemigroup derives the wrapper-level [Semigroup] from the carrier's
// [Apply] and an associative append on the success type, i.e. it is
// [Combine] as an instance. This is deliberately NOT a delegate to a carrier
// semigroup over F<Either>: the Map2 formulation is what gives the leftmost
// failure precedence and absence propagation documented on [Combine].
func DeriveSemigroup[E, A any](f Apply, s Semigroup) Semigroup {
	return eitherTSemigroup[E, A]{f: f, s: s}
}

type eitherTSemigroup[E, A any] struct {
	f Apply
	s Semigroup
}

func (d eitherTSemigroup[E, A]) Combine(x, y Erased) Erased {
	return Combine(d.f, d.s, x.(EitherT[E, A]), y.(EitherT[E, A]))
}

// DeriveMonoid extends [DeriveSemigroup] with the identity
// Pure(empty-success).
func DeriveMonoid[E, A any](f Applicative, mo Monoid) Monoid {
	return eitherTMonoid[E, A]{eitherTSemigroup[E, A]{f: f, s: mo}, f, mo}
}

type eitherTMonoid[E, A any] struct {
	eitherTSemigroup[E, A]
	ap Applicative
	mo Monoid
}

func (d eitherTMonoid[E, A]) Empty() Erased {
	return Pure[E](d.ap, d.mo.Empty().(A))
}

// DeriveBifunctor derives the wrapper-level [Bifunctor] from the carrier's
// [Functor].
func DeriveBifunctor(f Functor) Bifunctor {
	return eitherTBifunctor{f: f}
}

type eitherTBifunctor struct{ f Functor }

func (d eitherTBifunctor) Bimap(fab Erased, fe, fa func(Erased) Erased) Erased {
	return Bimap(d.f, fab.(EitherT[Erased, Erased]), fe, fa)
}

// DeriveBitraverse derives the wrapper-level [Bitraversable] from the
// carrier's [Traversable].
func DeriveBitraverse(t Traversable) Bitraversable {
	return eitherTBitraverse{eitherTBifunctor{f: t}, t}
}

type eitherTBitraverse struct {
	eitherTBifunctor
	t Traversable
}

func (d eitherTBitraverse) Bitraverse(g Applicative, fab Erased, fe, fa func(Erased) Erased) Erased {
	return Bitraverse[Erased, Erased, Erased, Erased](d.t, g, fab.(EitherT[Erased, Erased]), fe, fa)
}

// DeriveEq derives wrapper equality from a carrier [Eq] over the underlying
// F<Either[E, A]> values.
func DeriveEq[E, A any](eq Eq) Eq {
	return eitherTEq[E, A]{eq: eq}
}

type eitherTEq[E, A any] struct{ eq Eq }

func (d eitherTEq[E, A]) Eqv(x, y Erased) bool {
	return d.eq.Eqv(x.(EitherT[E, A]).value, y.(EitherT[E, A]).value)
}

// DerivePartialOrder derives a wrapper partial order from a carrier
// [PartialOrder] over the underlying F<Either[E, A]> values.
func DerivePartialOrder[E, A any](po PartialOrder) PartialOrder {
	return eitherTPartialOrder[E, A]{po: po}
}

type eitherTPartialOrder[E, A any] struct{ po PartialOrder }

func (d eitherTPartialOrder[E, A]) PartialCompare(x, y Erased) float64 {
	return d.po.PartialCompare(x.(EitherT[E, A]).value, y.(EitherT[E, A]).value)
}

func (d eitherTPartialOrder[E, A]) Eqv(x, y Erased) bool {
	return d.po.Eqv(x.(EitherT[E, A]).value, y.(EitherT[E, A]).value)
}

// DeriveOrder derives a wrapper total order from a carrier [Order] over the
// underlying F<Either[E, A]> values.
func DeriveOrder[E, A any](o Order) Order {
	return eitherTOrder[E, A]{o: o}
}

type eitherTOrder[E, A any] struct{ o Order }

func (d eitherTOrder[E, A]) Compare(x, y Erased) int {
	return d.o.Compare(x.(EitherT[E, A]).value, y.(EitherT[E, A]).value)
}

func (d eitherTOrder[E, A]) PartialCompare(x, y Erased) float64 {
	return float64(d.Compare(x, y))
}

func (d eitherTOrder[E, A]) Eqv(x, y Erased) bool {
	return d.Compare(x, y) == 0
}

// DeriveShow derives a wrapper [Show] from a carrier [Show] over the
// underlying F<Either[E, A]> values.
func DeriveShow[E, A any](s Show) Show {
	return eitherTShow[E, A]{s: s}
}

type eitherTShow[E, A any] struct{ s Show }

func (d eitherTShow[E, A]) Show(a Erased) string {
	return "EitherT(" + d.s.Show(a.(EitherT[E, A]).value) + ")"
}

// Eqv, PartialCompare, Compare, and ShowT are typed conveniences over the
// derived comparison and rendering instances.

// Eqv compares two wrappers with a carrier [Eq] over F<Either[E, A]>.
func Eqv[E, A any](eq Eq, x, y EitherT[E, A]) bool {
	return eq.Eqv(x.value, y.value)
}

// PartialCompare compares two wrappers with a carrier [PartialOrder] over
// F<Either[E, A]>. NaN means incomparable.
func PartialCompare[E, A any](po PartialOrder, x, y EitherT[E, A]) float64 {
	return po.PartialCompare(x.value, y.value)
}

// Compare compares two wrappers with a carrier [Order] over F<Either[E, A]>.
func Compare[E, A any](o Order, x, y EitherT[E, A]) int {
	return o.Compare(x.value, y.value)
}

// ShowT renders a wrapper with a carrier [Show] over F<Either[E, A]>.
func ShowT[E, A any](s Show, t EitherT[E, A]) string {
	return "EitherT(" + s.Show(t.value) + ")"
}
