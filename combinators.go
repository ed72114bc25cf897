// combinators.go — call-site helpers over (value, error) results and closures.
//
// Two families:
//   - While / ErrorWhile / InContextOf: the error type keeps its own context
//     (Carrier returning itself). Nested envelopes qualify too.
//   - Wrap / WrapErrorWhile / WrapInContextOf: any error; the result error is
//     an *ErrorContext, returned as error so a nil stays a nil interface.
//
// Every helper is a pass-through on success. The *Func variants only call the
// token function on failure, which keeps formatting off the success path.
//
// Result helpers take the value and the error as separate arguments because
// Go cannot spread a multi-value call into a call with extra parameters:
//
//	v, err := load(path)
//	v, err = errwhile.WrapErrorWhile(v, err, "loading "+path)
//
// Closure helpers (InContextOf, WrapInContextOf) label a whole block. The
// body may return early from any step; whatever error it returns gets the
// label exactly once.
//
// Choosing a family:
//   - The error type has a WithContext method returning itself: While,
//     ErrorWhile, InContextOf. The result keeps the concrete type.
//   - Anything else, or the label should nest rather than replace: Wrap,
//     WrapErrorWhile, WrapInContextOf. The result is a plain error holding an
//     *ErrorContext, or nil.
//   - Promoting a *RootCause with a known token type: AttachErrorWhile.
package errwhile

// While attaches ctx to a context-aware err. nil, including a typed nil
// pointer, passes through unchanged.
//
// Whether the label replaces or extends an earlier one is up to E's
// WithContext; envelopes nest.
func While[C any, E Carrier[C, E]](err E, ctx C) E {
	if isNil(err) {
		return err
	}
	return err.WithContext(ctx)
}

// WhileFunc is While with a token computed only on failure.
func WhileFunc[C any, E Carrier[C, E]](err E, ctx func() C) E {
	if isNil(err) {
		return err
	}
	return err.WithContext(ctx())
}

// ErrorWhile attaches ctx to the error side of a result.
//
//	v, err := parseHeader(b)
//	v, err = errwhile.ErrorWhile(v, err, "reading header")
func ErrorWhile[T any, C any, E Carrier[C, E]](v T, err E, ctx C) (T, E) {
	return v, While(err, ctx)
}

// ErrorWhileFunc is ErrorWhile with a deferred token.
func ErrorWhileFunc[T any, C any, E Carrier[C, E]](v T, err E, ctx func() C) (T, E) {
	return v, WhileFunc(err, ctx)
}

// AttachErrorWhile attaches ctx through any Carrier, allowing the error type
// to change (e.g. a *RootCause becoming an *ErrorContext). On success the
// zero R is returned.
func AttachErrorWhile[T any, C any, R error](v T, err Carrier[C, R], ctx C) (T, R) {
	if isNil(err) {
		var zero R
		return v, zero
	}
	return v, err.WithContext(ctx)
}

// Wrap wraps a non-nil err in an envelope carrying ctx. nil → nil.
//
// The result is returned as error so that a nil err yields a nil interface,
// never a typed nil *ErrorContext. A stack already carried by err is kept.
// Wrapping an envelope nests it:
//
//	err = errwhile.Wrap(err, "opening file")
//	err = errwhile.Wrap(err, "processing fish sticks")
func Wrap[E error, C any](err E, ctx C) error {
	if isNil(err) {
		return nil
	}
	return ToRootCause[C](err).WithContext(ctx)
}

// WrapFunc is Wrap with a deferred token.
func WrapFunc[E error, C any](err E, ctx func() C) error {
	if isNil(err) {
		return nil
	}
	return ToRootCause[C](err).WithContext(ctx())
}

// WrapErrorWhile wraps the error side of a result in an envelope.
func WrapErrorWhile[T any, E error, C any](v T, err E, ctx C) (T, error) {
	return v, Wrap(err, ctx)
}

// WrapErrorWhileFunc is WrapErrorWhile with a deferred token.
func WrapErrorWhileFunc[T any, E error, C any](v T, err E, ctx func() C) (T, error) {
	return v, WrapFunc(err, ctx)
}

// InContextOf runs body and attaches ctx to its error, if any. It groups
// several fallible steps under one label while body stays free to return
// early:
//
//	return errwhile.InContextOf("validating manifest", func() (*Manifest, ParseError) {
//		if err := checkRequired(seen); err != nil {
//			return nil, err
//		}
//		return m, nil
//	})
//
// body runs exactly once; ctx is attached after it returns.
func InContextOf[T any, C any, E Carrier[C, E]](ctx C, body func() (T, E)) (T, E) {
	v, err := body()
	return v, While(err, ctx)
}

// InContextOfFunc is InContextOf with a deferred token.
func InContextOfFunc[T any, C any, E Carrier[C, E]](ctx func() C, body func() (T, E)) (T, E) {
	v, err := body()
	return v, WhileFunc(err, ctx)
}

// WrapInContextOf runs body and wraps its error, if any, in an envelope.
func WrapInContextOf[T any, E error, C any](ctx C, body func() (T, E)) (T, error) {
	v, err := body()
	return v, Wrap(err, ctx)
}

// WrapInContextOfFunc is WrapInContextOf with a deferred token.
func WrapInContextOfFunc[T any, E error, C any](ctx func() C, body func() (T, E)) (T, error) {
	v, err := body()
	return v, WrapFunc(err, ctx)
}
