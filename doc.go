// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eithert provides a composable failure/success wrapper over an
// arbitrary carrier effect in Go.
//
// The core type [EitherT] holds a carrier value F<Either[E, A]>: a
// caller-chosen computational context F (optional value, multiple results,
// deferred computation, ...) whose elements are [Either] outcomes. Code
// composed with [FlatMap] short-circuits on the first Left while the
// surrounding computation stays embedded in the carrier, without manually
// unwrapping and rewrapping the carrier at every step.
//
// # Design Philosophy
//
// eithert provides:
//   - A minimal but complete capability vocabulary for carriers
//   - A typed generic surface over a type-erased core
//   - Explicit capability passing — no implicit instance resolution
//
// Go has no higher-kinded type parameters, so the carrier value is held
// type-erased ([Erased]) and each capability the carrier must support is an
// ordinary interface over erased values ([Functor], [Apply], [Applicative],
// [Monad], [Foldable], [Traversable], [Order], [Semigroup], ...). Every
// operation takes exactly the capability it needs as an explicit parameter;
// the typed generic functions restore element types at the boundary.
//
// # Layers
//
// Operations are grouped by the capability they demand of the carrier:
//
//   - Construction: [New], [Pure], [RightT], [LeftT], [LiftF], [FromEither],
//     [FromOption], [FromOptionF]
//   - Projection (Functor): [Fold], [Map], [Bimap], [LeftMap], [Swap],
//     [GetOrElse], [Recover], [Ensure], [SubflatMap], [Transform],
//     [WithValidated], [Merge], [ToOption], [Forall], [Exists]
//   - Combination (Apply): [Combine], [Ap]
//   - Sequencing (Monad): [FlatMap], [FlatMapF], [SemiflatMap], [OrElse],
//     [GetOrElseF], [RecoverWith]
//   - Folding (Foldable): [FoldLeft], [FoldRight]
//   - Traversal (Traversable): [Traverse], [Bitraverse]
//
// # Derived Instances
//
// A wrapper over a capability-bearing carrier transparently satisfies the
// same capability at the wrapper level: [DeriveFunctor], [DeriveMonad],
// [DeriveMonadError], [DeriveSemigroupK], [DeriveSemigroup], [DeriveMonoid],
// [DeriveBifunctor], [DeriveBitraverse], [DeriveEq], [DerivePartialOrder],
// [DeriveOrder], and [DeriveShow] build the wrapper-level instance from
// exactly the carrier capability each needs. Selection is explicit caller
// choice, one constructor per capability.
//
// # Short-Circuit and Recovery
//
// Left is the only error channel. A failure passes through every sequencing
// operation untouched; [Recover], [RecoverWith], and the [MonadError]
// operations are the only sanctioned interception points, and an unmatched
// failure propagates unchanged. [MonadError.Attempt] materializes the
// outcome as an always-succeeding wrapper when callers want to rule out
// further short-circuiting.
//
// # Stack Safety
//
// [Monad].TailRecM is the stack-safe recursion primitive: the derived
// wrapper monad converts the three-way carrier-of-outcome-of-(seed-or-done)
// into the carrier's own two-way recursion signal, so unbounded bind chains
// never overflow the call stack regardless of carrier. [Eval] provides the
// deferred accumulator for lazy right folds, forced by an iterative
// evaluation loop.
//
// # Laziness
//
// Defaults and alternatives ([GetOrElse], [GetOrElseF], [OrElse],
// [FromOption]'s failure) are thunks, evaluated strictly on demand: the
// success path never runs them. [FoldRight] hands the step function an
// unforced [Eval] tail, so folds terminate early when the tail is ignored.
//
// # Shipped Carriers
//
// [IdentityCarrier], [OptionCarrier], [SliceCarrier], and [EvalCarrier] are
// complete in-tree capability witnesses; the law test suite runs against
// them and they serve as worked examples for external carriers. The wrapper
// itself imposes no scheduling model — concurrency, suspension, and
// cancellation are exactly the carrier's own.
package eithert
