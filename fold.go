// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Traversal and folding layer: delegates to the carrier's own
// [Foldable]/[Traversable] capability and, within each carrier element,
// folds or traverses the outcome. A failure contributes nothing to a fold
// and is treated as already-complete by traversal.

// FoldLeft eagerly folds the success values left to right.
func FoldLeft[E, A, B any](f Foldable, t EitherT[E, A], zero B, fn func(B, A) B) B {
	r := f.FoldLeft(t.value, Erased(zero), func(acc, v Erased) Erased {
		if a, ok := v.(Either[E, A]).GetRight(); ok {
			return fn(acc.(B), a)
		}
		return acc
	})
	return r.(B)
}

// FoldRight lazily folds the success values right to left. The step function
// receives the tail as an unforced [Eval]; not forcing it terminates the fold
// early, so FoldRight is usable on carriers that are expensive or unbounded
// to materialize.
func FoldRight[E, A, B any](f Foldable, t EitherT[E, A], zero Eval[B], fn func(A, Eval[B]) Eval[B]) Eval[B] {
	r := f.FoldRight(t.value, eraseEval(zero), func(v Erased, acc Eval[Erased]) Eval[Erased] {
		if a, ok := v.(Either[E, A]).GetRight(); ok {
			return eraseEval(fn(a, retypeEval[B](acc)))
		}
		return acc
	})
	return retypeEval[B](r)
}

// Traverse traverses the success channel with f into the applicative g:
// f returns a g-value G<B>, and the result is an erased G<EitherT[E, B]>.
// Failures pass through untouched, lifted with g.Pure.
func Traverse[E, A, B any](f Traversable, g Applicative, t EitherT[E, A], fn func(A) Erased) Erased {
	inner := f.Traverse(g, t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if a, ok := e.GetRight(); ok {
			return g.Map(fn(a), func(b Erased) Erased {
				return Right[E](b.(B))
			})
		}
		left, _ := e.GetLeft()
		return g.Pure(Left[E, B](left))
	})
	return g.Map(inner, func(fv Erased) Erased {
		return EitherT[E, B]{value: fv}
	})
}

// Bitraverse traverses both channels with fe (failure, returning G<F2>) and
// fa (success, returning G<B>) into the applicative g. The result is an
// erased G<EitherT[F2, B]>.
func Bitraverse[E, F2, A, B any](f Traversable, g Applicative, t EitherT[E, A], fe func(E) Erased, fa func(A) Erased) Erased {
	inner := f.Traverse(g, t.value, func(v Erased) Erased {
		e := v.(Either[E, A])
		if a, ok := e.GetRight(); ok {
			return g.Map(fa(a), func(b Erased) Erased {
				return Right[F2](b.(B))
			})
		}
		left, _ := e.GetLeft()
		return g.Map(fe(left), func(f2 Erased) Erased {
			return Left[F2, B](f2.(F2))
		})
	})
	return g.Map(inner, func(fv Erased) Erased {
		return EitherT[F2, B]{value: fv}
	})
}
