// rootcause.go — the zero-context marker.
//
// A RootCause lifts an arbitrary error into the Carrier contract before any
// context exists. Its only behavior is promotion: attaching context yields a
// first-level *ErrorContext holding the raw error.
package errwhile

// RootCause marks err as the start of a context chain whose tokens are of
// type C.
type RootCause[E error, C any] struct {
	err E
	stk Stack
}

// ToRootCause wraps err in a marker. A nil err yields a nil marker so the
// result can be returned straight from a function.
//
// ToRootCause never captures a stack, but it inherits one: when err is itself
// an envelope or marker built on ToRootCauseWithStack, its Stack moves into
// the new marker, so re-wrapping an existing chain (Wrap on the result of
// another Wrap) keeps the original capture site.
//
// C usually needs to be spelled out: ToRootCause[string](err).
func ToRootCause[C any, E error](err E) *RootCause[E, C] {
	if isNil(err) {
		return nil
	}
	return &RootCause[E, C]{err: err, stk: stackOf(err)}
}

// ToRootCauseWithStack is ToRootCause plus a stack captured at the caller.
// The stack travels into every envelope built on top of the marker.
func ToRootCauseWithStack[C any, E error](err E) *RootCause[E, C] {
	if isNil(err) {
		return nil
	}
	return &RootCause[E, C]{err: err, stk: captureStackDefault(1)}
}

// MapRootCause lifts the error side of a (value, error) result into a marker.
func MapRootCause[C any, T any, E error](v T, err E) (T, *RootCause[E, C]) {
	return v, ToRootCause[C](err)
}

// Error delegates to the wrapped error; a marker adds no text.
func (r *RootCause[E, C]) Error() string { return innerString(r.err) }

func (r *RootCause[E, C]) Unwrap() error { return r.err }

// Inner returns the raw error.
func (r *RootCause[E, C]) Inner() E { return r.err }

func (r *RootCause[E, C]) Stack() Stack { return r.stk }

// Source returns the raw error's own cause.
func (r *RootCause[E, C]) Source() error { return sourceOf(r.err) }

// WithContext drops the marker and returns a first-level envelope.
func (r *RootCause[E, C]) WithContext(ctx C) *ErrorContext[E, C] {
	return &ErrorContext[E, C]{err: r.err, ctx: ctx, stk: r.stk}
}

func (r *RootCause[E, C]) innerError() error { return r.err }

var _ Carrier[string, *ErrorContext[error, string]] = (*RootCause[error, string])(nil)
var _ sourcer = (*RootCause[error, string])(nil)
var _ stacker = (*RootCause[error, string])(nil)
