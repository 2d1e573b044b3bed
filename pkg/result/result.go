// Package result provides a two-variant outcome type for remote calls whose
// failure is an expected business condition rather than an exceptional one.
//
// A Result holds either a success value or a failure value, never both.
// Callers branch explicitly with [Result.IsSuccess] / [Result.IsFailure]
// or exhaustively with [Match]:
//
//	res, err := client.GetReleaseByTagName(ctx, params)
//	if err != nil {
//		return err // network or decoding failure
//	}
//	if res.IsFailure() && res.Err().StatusCode == http.StatusNotFound {
//		// no such release
//	}
package result

// Result is either Success(value) or Failure(err).
// The zero Result is a failure carrying the zero value of E; construct
// results with [Success] or [Failure].
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Success builds a successful Result.
func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Failure builds a failed Result.
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// IsSuccess reports whether r holds a success value.
func (r Result[T, E]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether r holds a failure value.
func (r Result[T, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value, or the zero T for a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure value, or the zero E for a success.
func (r Result[T, E]) Err() E {
	return r.err
}

// Get returns both variants and the discriminator.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, r.ok
}

// Match calls exactly one of onSuccess or onFailure and returns its result.
func Match[T, E, R any](r Result[T, E], onSuccess func(T) R, onFailure func(E) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
