// Package security implements the composable validators named in §4.2:
// path safety, protected-file access, JSON structural limits, resource
// ceilings, and command safety. Each validator shares the same shape —
// input in, typed error out — and composes with AND (fail-fast) and OR
// (fall-back) combinators, grounded on the reference implementation's
// SecurityValidator/ChainableValidator/OrValidator traits. Go has no
// trait default methods to mix those traits in with, so the combinators
// are rendered as two constructor functions over a single generic
// interface instead of an inheritance hierarchy.
package security

import "github.com/maos-project/maos/internal/errs"

// Validator validates a value of type T, returning a typed *errs.Error on
// failure.
type Validator[T any] interface {
	Validate(input T) *errs.Error
}

// ValidatorFunc adapts a plain function to a Validator.
type ValidatorFunc[T any] func(input T) *errs.Error

// Validate implements Validator.
func (f ValidatorFunc[T]) Validate(input T) *errs.Error { return f(input) }

// And returns a validator that fails fast: it runs first, then second,
// only if first passed, and returns whichever error fired first.
func And[T any](first, second Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(input T) *errs.Error {
		if err := first.Validate(input); err != nil {
			return err
		}
		return second.Validate(input)
	})
}

// Or returns a validator that passes if either first or second passes,
// falling back to second's error only if both fail.
func Or[T any](first, second Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(input T) *errs.Error {
		if err := first.Validate(input); err == nil {
			return nil
		}
		return second.Validate(input)
	})
}

// IsSafe is a convenience wrapper mirroring the reference trait's
// is_safe() default method.
func IsSafe[T any](v Validator[T], input T) bool {
	return v.Validate(input) == nil
}
