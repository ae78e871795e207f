// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

import "sync"

// Eval is a deferred computation of a single value.
//
// Eval is the accumulator type of [Foldable].FoldRight: a step function that
// never forces its tail terminates the fold early. It is also a shipped
// carrier in its own right (see [EvalCarrier]).
//
// Like the rest of the package, Eval pairs a typed generic surface with a
// type-erased defunctionalized core: construction builds a chain of nodes,
// and [Eval.Value] drives them with an iterative loop and an explicit
// continuation stack, so unbounded Defer/FlatMap chains never grow the call
// stack.
type Eval[A any] struct {
	node evalNode
}

// evalNode is the erased defunctionalized representation of an Eval step.
type evalNode interface{ evalNode() }

// evalNow is an already-computed value.
type evalNow struct{ v Erased }

// evalLater is a memoized thunk: computed at most once, then cached.
type evalLater struct {
	once sync.Once
	f    func() Erased
	v    Erased
}

// evalDefer suspends the construction of the next node.
type evalDefer struct{ f func() evalNode }

// evalBind sequences src with a continuation producing the next node.
type evalBind struct {
	src evalNode
	f   func(Erased) evalNode
}

func (evalNow) evalNode()    {}
func (*evalLater) evalNode() {}
func (evalDefer) evalNode()  {}
func (evalBind) evalNode()   {}

// Now lifts an already-computed value.
func Now[A any](a A) Eval[A] {
	return Eval[A]{node: evalNow{v: a}}
}

// Later defers a computation and memoizes its result: f runs at most once,
// on the first force.
func Later[A any](f func() A) Eval[A] {
	return Eval[A]{node: &evalLater{f: func() Erased { return f() }}}
}

// Defer suspends the construction of an Eval. Unlike [Later] the produced
// Eval is not memoized; Defer is the building block for lazy recursion.
func Defer[A any](f func() Eval[A]) Eval[A] {
	return Eval[A]{node: evalDefer{f: func() evalNode { return f().node }}}
}

// MapEval transforms the eventual value without forcing it.
func MapEval[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return Eval[B]{node: evalBind{src: e.node, f: func(v Erased) evalNode {
		return evalNow{v: f(v.(A))}
	}}}
}

// FlatMapEval sequences two deferred computations without forcing either.
func FlatMapEval[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	return Eval[B]{node: evalBind{src: e.node, f: func(v Erased) evalNode {
		return f(v.(A)).node
	}}}
}

// Value forces the computation.
// Evaluation is iterative: bind continuations are pushed on an explicit
// stack and popped as values become available, so forcing is stack-safe
// regardless of chain depth.
func (e Eval[A]) Value() A {
	return evalRun(e.node).(A)
}

func evalRun(node evalNode) Erased {
	var stack []func(Erased) evalNode
	for {
		switch n := node.(type) {
		case evalNow:
			if len(stack) == 0 {
				return n.v
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node = f(n.v)
		case *evalLater:
			n.once.Do(func() {
				n.v = n.f()
				n.f = nil
			})
			if len(stack) == 0 {
				return n.v
			}
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			node = f(n.v)
		case evalDefer:
			node = n.f()
		case evalBind:
			stack = append(stack, n.f)
			node = n.src
		default:
			panic("eithert: unknown eval node")
		}
	}
}

// eraseEval and retypeEval convert between the typed surface and the erased
// accumulator used by [Foldable]. The node chain is shared, so conversion is
// free and preserves laziness; the element's dynamic type is restored on the
// final force.
func eraseEval[A any](e Eval[A]) Eval[Erased] {
	return Eval[Erased]{node: e.node}
}

func retypeEval[A any](e Eval[Erased]) Eval[A] {
	return Eval[A]{node: e.node}
}
