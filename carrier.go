// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Shipped carrier instances. Each is a stateless witness of the capability
// interfaces for one concrete effect; the representation of the carrier
// value is documented per carrier. These are what the test suite runs the
// laws against, and they double as worked examples for writing instances
// for external carriers.

// IdentityCarrier is the no-effect carrier: F<X> is represented by the X
// value itself. It is strict and synchronous.
type IdentityCarrier struct{}

func (IdentityCarrier) Map(fa Erased, f func(Erased) Erased) Erased {
	return f(fa)
}

func (IdentityCarrier) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	return f(fa, fb)
}

func (IdentityCarrier) Pure(a Erased) Erased {
	return a
}

func (IdentityCarrier) FlatMap(fa Erased, f func(Erased) Erased) Erased {
	return f(fa)
}

// TailRecM loops in place; constant stack regardless of iteration count.
func (IdentityCarrier) TailRecM(seed Erased, f func(Erased) Erased) Erased {
	for {
		e := f(seed).(Either[Erased, Erased])
		if next, ok := e.GetLeft(); ok {
			seed = next
			continue
		}
		r, _ := e.GetRight()
		return r
	}
}

func (IdentityCarrier) FoldLeft(fa, zero Erased, f func(Erased, Erased) Erased) Erased {
	return f(zero, fa)
}

func (IdentityCarrier) FoldRight(fa Erased, zero Eval[Erased], f func(Erased, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	return f(fa, zero)
}

func (IdentityCarrier) Traverse(g Applicative, fa Erased, f func(Erased) Erased) Erased {
	return f(fa)
}

// OptionCarrier is the optional-single-value carrier: F<X> is represented
// as Option[Erased]. Absence (None) propagates through Map2 and FlatMap.
type OptionCarrier struct{}

func (OptionCarrier) Map(fa Erased, f func(Erased) Erased) Erased {
	o := fa.(Option[Erased])
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[Erased]()
}

func (OptionCarrier) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	oa, ob := fa.(Option[Erased]), fb.(Option[Erased])
	a, aok := oa.Get()
	b, bok := ob.Get()
	if aok && bok {
		return Some(f(a, b))
	}
	return None[Erased]()
}

func (OptionCarrier) Pure(a Erased) Erased {
	return Some(a)
}

func (OptionCarrier) FlatMap(fa Erased, f func(Erased) Erased) Erased {
	o := fa.(Option[Erased])
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[Erased]()
}

func (OptionCarrier) TailRecM(seed Erased, f func(Erased) Erased) Erased {
	for {
		o := f(seed).(Option[Erased])
		v, ok := o.Get()
		if !ok {
			return None[Erased]()
		}
		e := v.(Either[Erased, Erased])
		if next, ok := e.GetLeft(); ok {
			seed = next
			continue
		}
		r, _ := e.GetRight()
		return Some(r)
	}
}

func (OptionCarrier) FoldLeft(fa, zero Erased, f func(Erased, Erased) Erased) Erased {
	if v, ok := fa.(Option[Erased]).Get(); ok {
		return f(zero, v)
	}
	return zero
}

func (OptionCarrier) FoldRight(fa Erased, zero Eval[Erased], f func(Erased, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	if v, ok := fa.(Option[Erased]).Get(); ok {
		return f(v, zero)
	}
	return zero
}

func (OptionCarrier) Traverse(g Applicative, fa Erased, f func(Erased) Erased) Erased {
	o := fa.(Option[Erased])
	if v, ok := o.Get(); ok {
		return g.Map(f(v), func(b Erased) Erased {
			return Some(b)
		})
	}
	return g.Pure(None[Erased]())
}

// SliceCarrier is the multiple-results carrier: F<X> is represented as
// []Erased. Map2 is the cartesian product in left-major order; an empty
// slice is the carrier's absence and annihilates Map2 and FlatMap.
type SliceCarrier struct{}

func (SliceCarrier) Map(fa Erased, f func(Erased) Erased) Erased {
	xs := fa.([]Erased)
	out := make([]Erased, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

func (SliceCarrier) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	xs, ys := fa.([]Erased), fb.([]Erased)
	out := make([]Erased, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, f(x, y))
		}
	}
	return out
}

func (SliceCarrier) Pure(a Erased) Erased {
	return []Erased{a}
}

func (SliceCarrier) FlatMap(fa Erased, f func(Erased) Erased) Erased {
	xs := fa.([]Erased)
	var out []Erased
	for _, x := range xs {
		out = append(out, f(x).([]Erased)...)
	}
	return out
}

// TailRecM uses an explicit work stack instead of native recursion: each
// Left expands depth-first into a fresh expansion of f, each Right is
// emitted. The emission order matches what chained FlatMaps would produce.
func (SliceCarrier) TailRecM(seed Erased, f func(Erased) Erased) Erased {
	type frame struct {
		xs []Erased
		i  int
	}
	out := []Erased{}
	stack := []*frame{{xs: f(seed).([]Erased)}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.i >= len(top.xs) {
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.xs[top.i]
		top.i++
		e := v.(Either[Erased, Erased])
		if next, ok := e.GetLeft(); ok {
			stack = append(stack, &frame{xs: f(next).([]Erased)})
			continue
		}
		b, _ := e.GetRight()
		out = append(out, b)
	}
	return out
}

func (SliceCarrier) FoldLeft(fa, zero Erased, f func(Erased, Erased) Erased) Erased {
	acc := zero
	for _, x := range fa.([]Erased) {
		acc = f(acc, x)
	}
	return acc
}

// FoldRight is lazy: the tail of the fold is wrapped in [Defer], so a step
// that does not force its accumulator stops the iteration. Forcing is
// stack-safe through the Eval trampoline.
func (SliceCarrier) FoldRight(fa Erased, zero Eval[Erased], f func(Erased, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	xs := fa.([]Erased)
	var loop func(i int) Eval[Erased]
	loop = func(i int) Eval[Erased] {
		if i >= len(xs) {
			return zero
		}
		return f(xs[i], Defer(func() Eval[Erased] { return loop(i + 1) }))
	}
	return Defer(func() Eval[Erased] { return loop(0) })
}

func (SliceCarrier) Traverse(g Applicative, fa Erased, f func(Erased) Erased) Erased {
	acc := g.Pure([]Erased{})
	for _, x := range fa.([]Erased) {
		acc = g.Map2(acc, f(x), func(accV, b Erased) Erased {
			prev := accV.([]Erased)
			next := make([]Erased, len(prev), len(prev)+1)
			copy(next, prev)
			return append(next, b)
		})
	}
	return acc
}

// EvalCarrier is the deferred carrier: F<X> is represented as Eval[Erased].
// Effects are suspended until the final Eval is forced, which makes it the
// carrier of choice for verifying that defaults and alternatives are only
// evaluated on demand.
type EvalCarrier struct{}

func (EvalCarrier) Map(fa Erased, f func(Erased) Erased) Erased {
	return MapEval(fa.(Eval[Erased]), f)
}

func (EvalCarrier) Map2(fa, fb Erased, f func(Erased, Erased) Erased) Erased {
	ea, eb := fa.(Eval[Erased]), fb.(Eval[Erased])
	return FlatMapEval(ea, func(a Erased) Eval[Erased] {
		return MapEval(eb, func(b Erased) Erased { return f(a, b) })
	})
}

func (EvalCarrier) Pure(a Erased) Erased {
	return Now(a)
}

func (EvalCarrier) FlatMap(fa Erased, f func(Erased) Erased) Erased {
	return FlatMapEval(fa.(Eval[Erased]), func(v Erased) Eval[Erased] {
		return f(v).(Eval[Erased])
	})
}

// TailRecM defers each iteration through the Eval trampoline; the chain is
// only unwound, iteratively, when the result is forced.
func (EvalCarrier) TailRecM(seed Erased, f func(Erased) Erased) Erased {
	var loop func(seed Erased) Eval[Erased]
	loop = func(seed Erased) Eval[Erased] {
		return FlatMapEval(f(seed).(Eval[Erased]), func(v Erased) Eval[Erased] {
			e := v.(Either[Erased, Erased])
			if next, ok := e.GetLeft(); ok {
				return Defer(func() Eval[Erased] { return loop(next) })
			}
			r, _ := e.GetRight()
			return Now(r)
		})
	}
	return loop(seed)
}

func (EvalCarrier) FoldLeft(fa, zero Erased, f func(Erased, Erased) Erased) Erased {
	return f(zero, fa.(Eval[Erased]).Value())
}

func (EvalCarrier) FoldRight(fa Erased, zero Eval[Erased], f func(Erased, Eval[Erased]) Eval[Erased]) Eval[Erased] {
	return Defer(func() Eval[Erased] {
		return f(fa.(Eval[Erased]).Value(), zero)
	})
}

func (EvalCarrier) Traverse(g Applicative, fa Erased, f func(Erased) Erased) Erased {
	return g.Map(f(fa.(Eval[Erased]).Value()), func(b Erased) Erased {
		return Now(b)
	})
}
