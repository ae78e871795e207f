// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eithert

// Validated is the accumulating counterpart of [Either]: where applicative
// composition over Either fails fast, [ApValidated] combines the failures of
// both sides. [WithValidated] uses it to run a momentary accumulation step
// inside an otherwise fail-fast pipeline.
type Validated[E, A any] struct {
	isValid bool
	invalid E
	valid   A
}

// Invalid creates a failed Validated.
func Invalid[E, A any](e E) Validated[E, A] {
	return Validated[E, A]{isValid: false, invalid: e}
}

// Valid creates a successful Validated.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{isValid: true, valid: a}
}

// IsValid returns true if this is a Valid value.
func (v Validated[E, A]) IsValid() bool {
	return v.isValid
}

// IsInvalid returns true if this is an Invalid value.
func (v Validated[E, A]) IsInvalid() bool {
	return !v.isValid
}

// GetValid returns the Valid value and true, or zero and false.
func (v Validated[E, A]) GetValid() (A, bool) {
	if v.isValid {
		return v.valid, true
	}
	var zero A
	return zero, false
}

// GetInvalid returns the Invalid value and true, or zero and false.
func (v Validated[E, A]) GetInvalid() (E, bool) {
	if !v.isValid {
		return v.invalid, true
	}
	var zero E
	return zero, false
}

// MatchValidated pattern matches on the Validated.
func MatchValidated[E, A, T any](v Validated[E, A], onInvalid func(E) T, onValid func(A) T) T {
	if v.isValid {
		return onValid(v.valid)
	}
	return onInvalid(v.invalid)
}

// MapValidated applies a function to the Valid value.
func MapValidated[E, A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if v.isValid {
		return Valid[E](f(v.valid))
	}
	return Invalid[E, B](v.invalid)
}

// ApValidated applies a wrapped function to a wrapped value, accumulating
// failures from both sides with combine when both are Invalid.
func ApValidated[E, A, B any](vf Validated[E, func(A) B], va Validated[E, A], combine func(E, E) E) Validated[E, B] {
	switch {
	case vf.isValid && va.isValid:
		return Valid[E](vf.valid(va.valid))
	case !vf.isValid && !va.isValid:
		return Invalid[E, B](combine(vf.invalid, va.invalid))
	case !vf.isValid:
		return Invalid[E, B](vf.invalid)
	default:
		return Invalid[E, B](va.invalid)
	}
}

// ToValidated reinterprets an Either as a Validated.
func ToValidated[E, A any](e Either[E, A]) Validated[E, A] {
	if a, ok := e.GetRight(); ok {
		return Valid[E](a)
	}
	left, _ := e.GetLeft()
	return Invalid[E, A](left)
}

// FromValidated converts a Validated back into an Either.
func FromValidated[E, A any](v Validated[E, A]) Either[E, A] {
	if v.isValid {
		return Right[E](v.valid)
	}
	return Left[E, A](v.invalid)
}
