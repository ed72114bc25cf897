// doc.go — package documentation for xgx-errwhile
//
// Package errwhile builds error messages such as
//
//	while processing fish sticks got error: while opening file got error: file is no good
//
// one clause per call-chain layer, while errors.Is/As still match the
// original failure.
//
// # Two Ways To Hold Context
//
// A context-aware error implements Carrier[C, E] and returns its own type:
// attaching context rebuilds the same variant with its context field set.
// Any other error is wrapped in an *ErrorContext envelope. Envelopes nest:
//
//	+---------------------+-------------------------+-------------------------+
//	| Receiver            | WithContext(c)          | Result                  |
//	+---------------------+-------------------------+-------------------------+
//	| context-aware E     | E                       | same variant, field = c |
//	| *RootCause[E, C]    | *ErrorContext[E, C]     | first envelope          |
//	| *ErrorContext[E, C] | *ErrorContext[error, C] | envelope of envelope    |
//	+---------------------+-------------------------+-------------------------+
//
// # Call Sites
//
// Context-aware errors:
//
//	return errwhile.While(err, "decoding record")
//	v, err = errwhile.ErrorWhile(v, err, "decoding record")
//	v, err := errwhile.InContextOf("loading user", func() (User, ParseError) { ... })
//
// Any error:
//
//	return errwhile.Wrap(err, "opening file")
//
// Go does not splat a multi-value call into extra arguments, so result
// helpers take the value and the error separately:
//
//	f, err := os.Open(path)
//	f, err = errwhile.WrapErrorWhile(f, err, "opening file")
//
// The *Func variants take a token function and call it only on failure:
//
//	return errwhile.WrapFunc(err, func() string { return fmt.Sprintf("reading %s", name) })
//
// # Cause Chains
//
// Unwrap on an envelope returns the inner error, so errors.Is/As see through
// context. Source returns the inner failure's own cause instead, so
// SourceChain lists the real causes without the synthetic layers. Contexts
// collects the tokens, outermost first; Strip peels every layer off.
//
// # Formatting
//
//   - %v, %s → Error()
//   - %q     → quoted Error()
//   - %+v    → one "while <token>:" line per layer, the failure with %+v, and
//     the stack captured by ToRootCauseWithStack (if any).
package errwhile
