// format.go — fmt.Formatter implementations for envelopes and markers.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%q       → quoted Error().
//	%+v      → one line per context layer, outermost first, then the
//	           failure rendered with %+v, then the captured stack:
//	             while "opening file":
//	             file is no good
//	             stack:
//	               pkg.Func file.go:12
//
// Tokens use their Go-syntax (%#v) form in verbose mode so that two tokens
// with the same display text can still be told apart.
package errwhile

import (
	"fmt"
	"io"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// verboseNode is the per-layer hook used by %+v recursion.
type verboseNode interface {
	writeVerbose(w io.Writer)
}

func writeVerboseInner(w io.Writer, err error) {
	if n, ok := err.(verboseNode); ok {
		n.writeVerbose(w)
		return
	}
	if isNil(err) {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	_, _ = fmt.Fprintf(w, "%+v", err)
}

func writeStack(w io.Writer, stk Stack) {
	if len(stk) == 0 {
		return
	}
	_, _ = io.WriteString(w, "\nstack:")
	for _, fr := range stk {
		_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
	}
}

// writeVerbose prints this layer and recurses without repeating the stack,
// which every layer of one chain shares.
func (e *ErrorContext[E, C]) writeVerbose(w io.Writer) {
	_, _ = fmt.Fprintf(w, "while %#v:\n", e.ctx)
	writeVerboseInner(w, e.err)
}

func (r *RootCause[E, C]) writeVerbose(w io.Writer) {
	writeVerboseInner(w, r.err)
}

func (e *ErrorContext[E, C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.writeVerbose(s)
			writeStack(s, e.stk)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (r *RootCause[E, C]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			r.writeVerbose(s)
			writeStack(s, r.stk)
			return
		}
		formatConcise(s, r)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", r.Error())
	default:
		formatConcise(s, r)
	}
}
