// envelope.go — the generic context envelope.
//
// An ErrorContext pairs any error with one context token. Attaching more
// context to an envelope wraps it again instead of editing it, so every
// layer of a call chain contributes exactly one "while ... got error:" clause.
//
// Interop:
//   - Unwrap returns the inner error, so errors.Is/As match the original
//     failure through any number of envelopes.
//   - Source returns the inner failure's own cause and skips envelope layers;
//     diagnostic tools walking causes never see the synthetic wrappers.
//
// Typing:
//   - ErrorContext[E, C] keeps the inner error's static type, so Inner on a
//     first-level envelope returns the concrete E without a type assertion.
//   - An envelope of an envelope is ErrorContext[error, C]: naming the exact
//     nested type would make WithContext instantiate an unbounded chain of
//     types, which the compiler rejects.
//
// Stacks:
//   - An envelope never captures. It inherits the Stack of the error it wraps
//     (see ToRootCauseWithStack), and WithContext passes it outward, so the
//     outermost layer always knows the original capture site.
package errwhile

import (
	"errors"
	"fmt"
)

// ErrorContext is an error E annotated with a context token C.
//
// The zero value is not useful; build envelopes with WrapContext, Wrap or by
// attaching context to a RootCause. Values are immutable after construction
// and safe to share between goroutines.
type ErrorContext[E error, C any] struct {
	err E
	ctx C
	stk Stack
}

// WrapContext always builds a first-level envelope around err, even if err is
// nil. Prefer Wrap on paths where err may be nil.
//
// A stack already carried by err (see ToRootCauseWithStack) is inherited.
func WrapContext[E error, C any](err E, ctx C) *ErrorContext[E, C] {
	return &ErrorContext[E, C]{err: err, ctx: ctx, stk: stackOf(err)}
}

// Error renders "while {context} got error: {inner}".
//
// The token is rendered with fmt.Sprint (strings verbatim), the inner error
// with its own Error; a nil inner renders as "<nil>". Nested envelopes
// therefore read outermost first:
//
//	while processing fish sticks got error: while opening file got error: file is no good
func (e *ErrorContext[E, C]) Error() string {
	return "while " + tokenString(e.ctx) + " got error: " + innerString(e.err)
}

// Unwrap exposes the inner error to errors.Is/As.
func (e *ErrorContext[E, C]) Unwrap() error { return e.err }

// Inner strips this layer of context and returns the wrapped error.
func (e *ErrorContext[E, C]) Inner() E { return e.err }

// Context returns the token attached at this layer.
func (e *ErrorContext[E, C]) Context() C { return e.ctx }

// Stack returns the stack captured when the root cause was created, if any.
func (e *ErrorContext[E, C]) Stack() Stack { return e.stk }

// Source returns the cause of the wrapped failure, not the wrapped failure
// itself. Envelope and marker layers are skipped.
func (e *ErrorContext[E, C]) Source() error { return sourceOf(e.err) }

// WithContext nests e inside a new envelope carrying ctx. e itself is left
// untouched; the new outer layer shares e's stack.
func (e *ErrorContext[E, C]) WithContext(ctx C) *ErrorContext[error, C] {
	return &ErrorContext[error, C]{err: e, ctx: ctx, stk: e.stk}
}

// contextToken lets traversal read the token without knowing E and C.
func (e *ErrorContext[E, C]) contextToken() any { return e.ctx }

// innerError lets Strip peel layers without knowing E and C.
func (e *ErrorContext[E, C]) innerError() error { return e.err }

// layer is implemented by every envelope instantiation.
type layer interface {
	error
	contextToken() any
	innerError() error
}

// sourcer is implemented by envelopes, markers and any foreign error that
// wants to expose a cause chain different from its Unwrap chain.
type sourcer interface {
	Source() error
}

// sourceOf returns the cause of err for chain walking purposes.
func sourceOf(err error) error {
	if isNil(err) {
		return nil
	}
	if s, ok := err.(sourcer); ok {
		return s.Source()
	}
	return errors.Unwrap(err)
}

// stacker is implemented by envelopes and markers.
type stacker interface {
	Stack() Stack
}

// stackOf returns the stack carried by err's outermost layer, or nil. It
// does not look through foreign wrappers.
func stackOf(err error) Stack {
	if isNil(err) {
		return nil
	}
	if s, ok := err.(stacker); ok {
		return s.Stack()
	}
	return nil
}

// tokenString is the display form of a context token.
func tokenString(ctx any) string {
	if s, ok := ctx.(string); ok {
		return s
	}
	return fmt.Sprint(ctx)
}

func innerString(err error) string {
	if isNil(err) {
		return "<nil>"
	}
	return err.Error()
}

var _ Carrier[string, *ErrorContext[error, string]] = (*ErrorContext[error, string])(nil)
var _ layer = (*ErrorContext[error, string])(nil)
var _ sourcer = (*ErrorContext[error, string])(nil)
var _ stacker = (*ErrorContext[error, string])(nil)
