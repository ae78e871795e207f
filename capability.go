// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Capability interfaces the carrier effect must satisfy.
//
// Go has no higher-kinded type parameters, so a carrier value F<X> is held
// type-erased as [Erased] and each capability is an ordinary interface over
// erased values, passed explicitly to the operation that needs it. The typed
// generic surface of [EitherT] restores the element types at the boundary.
// Implementations must uphold the usual laws for their capability (functor
// identity/composition, monad identity/associativity, fold/traverse laws,
// total order, associative combine); nothing in this package can check them
// for an arbitrary carrier, but the shipped carriers do and the test suite
// verifies them.

// Erased is a type-erased value. Carrier values, and the elements flowing
// through capability interfaces, travel as Erased.
type Erased = any

// Functor is the minimal capability: projecting the value inside the carrier.
type Functor interface {
	// Map transforms every value inside fa with f, preserving the carrier
	// structure.
	Map(fa Erased, f func(Erased) Erased) Erased
}

// Apply extends [Functor] with pointwise combination of two carrier values.
type Apply interface {
	Functor
	// Map2 combines the values of two carrier values with f. Carrier-level
	// absence (an empty carrier on either side) propagates per the carrier's
	// own semantics.
	Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased
}

// Applicative extends [Apply] with lifting of pure values.
type Applicative interface {
	Apply
	// Pure lifts a bare value into the carrier.
	Pure(a Erased) Erased
}

// Monad extends [Applicative] with sequencing and stack-safe recursion.
type Monad interface {
	Applicative
	// FlatMap sequences fa with f, where f returns a new carrier value.
	FlatMap(fa Erased, f func(Erased) Erased) Erased
	// TailRecM repeatedly invokes f on a seed until it signals completion.
	// f returns a carrier of Either[Erased, Erased]: Left carries the next
	// seed, Right carries the final value. Implementations must not consume
	// call-stack frames proportional to the number of iterations.
	TailRecM(seed Erased, f func(Erased) Erased) Erased
}

// Foldable is the capability of collapsing a carrier to a summary value.
type Foldable interface {
	// FoldLeft eagerly folds the carrier left to right.
	FoldLeft(fa Erased, zero Erased, f func(Erased, Erased) Erased) Erased
	// FoldRight folds right to left through a deferred accumulator. The step
	// function receives the tail as an unforced [Eval]; a step that never
	// forces it terminates the fold early, which keeps FoldRight usable on
	// carriers that are expensive or unbounded to materialize.
	FoldRight(fa Erased, zero Eval[Erased], f func(Erased, Eval[Erased]) Eval[Erased]) Eval[Erased]
}

// Traversable is the capability of traversing the carrier with an effectful
// function into any [Applicative] g.
type Traversable interface {
	Functor
	Foldable
	// Traverse maps every element of fa with f (which returns a g-value) and
	// collects the rebuilt carrier inside g, i.e. G<F<_>>.
	Traverse(g Applicative, fa Erased, f func(Erased) Erased) Erased
}

// Eq is the equality capability.
type Eq interface {
	Eqv(x, y Erased) bool
}

// PartialOrder extends [Eq] with a partial comparison.
type PartialOrder interface {
	Eq
	// PartialCompare returns a negative value, zero, or a positive value,
	// or NaN when x and y are incomparable.
	PartialCompare(x, y Erased) float64
}

// Order extends [PartialOrder] with a total comparison.
type Order interface {
	PartialOrder
	Compare(x, y Erased) int
}

// Semigroup is an associative combine.
type Semigroup interface {
	Combine(x, y Erased) Erased
}

// Monoid extends [Semigroup] with an identity element.
type Monoid interface {
	Semigroup
	Empty() Erased
}

// SemigroupK is choice-like combination: keep x unless it failed, then y.
type SemigroupK interface {
	CombineK(x, y Erased) Erased
}

// MonadError extends [Monad] with an explicit failure channel.
type MonadError interface {
	Monad
	// RaiseError lifts a failure value into the carrier.
	RaiseError(e Erased) Erased
	// HandleError recovers a failure into a pure success value, never
	// touching an existing success.
	HandleError(fa Erased, f func(Erased) Erased) Erased
	// HandleErrorWith recovers a failure with a full replacement computation,
	// never touching an existing success.
	HandleErrorWith(fa Erased, f func(Erased) Erased) Erased
	// Attempt materializes the outcome as an always-succeeding value so no
	// further short-circuiting can occur.
	Attempt(fa Erased) Erased
}

// Bifunctor maps both channels of a two-channel structure independently.
type Bifunctor interface {
	Bimap(fab Erased, f, g func(Erased) Erased) Erased
}

// Bitraversable extends [Bifunctor] with effectful traversal of both channels.
type Bitraversable interface {
	Bifunctor
	Bitraverse(g Applicative, fab Erased, f, h func(Erased) Erased) Erased
}

// Show renders a value for diagnostics.
type Show interface {
	Show(a Erased) string
}

// EqOf builds an [Eq] witness from a plain typed equality function.
func EqOf[A any](f func(A, A) bool) Eq {
	return eqOf[A]{f: f}
}

type eqOf[A any] struct{ f func(A, A) bool }

func (q eqOf[A]) Eqv(x, y Erased) bool { return q.f(x.(A), y.(A)) }

// OrderOf builds an [Order] witness from a plain typed comparison function.
func OrderOf[A any](f func(A, A) int) Order {
	return orderOf[A]{f: f}
}

type orderOf[A any] struct{ f func(A, A) int }

func (o orderOf[A]) Compare(x, y Erased) int { return o.f(x.(A), y.(A)) }

func (o orderOf[A]) PartialCompare(x, y Erased) float64 {
	return float64(o.Compare(x, y))
}

func (o orderOf[A]) Eqv(x, y Erased) bool { return o.Compare(x, y) == 0 }

// SemigroupOf builds a [Semigroup] witness from a plain typed append.
// f must be associative.
func SemigroupOf[A any](f func(A, A) A) Semigroup {
	return semigroupOf[A]{f: f}
}

type semigroupOf[A any] struct{ f func(A, A) A }

func (s semigroupOf[A]) Combine(x, y Erased) Erased { return s.f(x.(A), y.(A)) }

// MonoidOf builds a [Monoid] witness from an identity element and a plain
// typed append. f must be associative with empty as its identity.
func MonoidOf[A any](empty A, f func(A, A) A) Monoid {
	return monoidOf[A]{empty: empty, semigroupOf: semigroupOf[A]{f: f}}
}

type monoidOf[A any] struct {
	semigroupOf[A]
	empty A
}

func (m monoidOf[A]) Empty() Erased { return m.empty }

// ShowOf builds a [Show] witness from a plain typed rendering function.
func ShowOf[A any](f func(A) string) Show {
	return showOf[A]{f: f}
}

type showOf[A any] struct{ f func(A) string }

func (s showOf[A]) Show(a Erased) string { return s.f(a.(A)) }
