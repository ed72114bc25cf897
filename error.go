// error.go — the Carrier contract.
//
// errwhile attaches human-readable context to errors as they travel up a
// call chain, without losing the underlying error's identity.
//
// Design tenets:
//   - Interop-first: every wrapper unwraps, so errors.Is/As keep working.
//   - Minimal surface: no logging/HTTP/JSON in core.
//   - Non-mutating: attaching context returns a new value.
//   - Two storage strategies behind one contract: a context-aware error keeps
//     the context in its own field, anything else gets wrapped in an envelope.
//
// Design notes (Go generics):
//   - Go has no associated types, so the type produced by attaching context is
//     a second type parameter: Carrier[C, R]. A context-aware error is a
//     Carrier[C, E] of itself; the envelope and marker name their result type.
//   - Same-type helpers (While, ErrorWhile, InContextOf) constrain
//     E Carrier[C, E] so the caller keeps its concrete error type.
//   - Type-changing helpers either take the interface Carrier[C, R] (Attach,
//     AttachErrorWhile) or return plain error (Wrap*). The latter never hands
//     back a typed nil pointer inside a non-nil interface.
//   - Nil checks go through isNil: a type parameter instantiated with a
//     pointer type compares unequal to nil even when the pointer is nil.
package errwhile

import (
	"reflect"
)

// Carrier is the contract of an error that can accept a context token.
//
// WithContext consumes the receiver and the token and returns an error that
// carries both. R is chosen by the implementation:
//   - a context-aware domain error returns its own type (R == receiver type),
//   - *ErrorContext returns a new outer envelope (nesting),
//   - *RootCause returns a first-level *ErrorContext.
//
// Implementations MUST NOT inspect the token beyond storing and displaying it,
// and MUST NOT panic.
type Carrier[C any, R error] interface {
	error
	WithContext(ctx C) R
}

// Attach calls err.WithContext(ctx). It exists so call sites read the same
// regardless of which Carrier implementation is underneath:
//
//	rc := errwhile.ToRootCause[string](err)
//	env := errwhile.Attach(rc, "opening file")   // *ErrorContext[error, string]
//	pe := errwhile.Attach(parseErr, "decoding")  // same ParseError variant
//
// R is inferred from err's static type. Attach does not check for nil; use
// AttachErrorWhile or While on paths where err may be nil.
func Attach[C any, R error](err Carrier[C, R], ctx C) R {
	return err.WithContext(ctx)
}

// isNil reports whether v holds no error. Generic error values may be typed
// nil pointers, which compare unequal to a nil interface.
//
// Only kinds that can be nil are checked; value-typed errors (structs,
// strings) are never nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
