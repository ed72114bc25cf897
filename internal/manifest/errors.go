package manifest

import (
	"fmt"
)

// ParseError is the context-aware error of the manifest parser. Each variant
// holds one context label; attaching a new one replaces the old one, so the
// rendered message names the outermost step that attached a label.
//
// Variants: *SyntaxError, *UnknownKeyError, *ValueError, *MissingKeyError.
type ParseError interface {
	error
	WithContext(ctx string) ParseError
	// Line is the 1-based source line, or 0 when the error is not tied to one.
	Line() int
	parseError()
}

// SyntaxError is a line that is neither a comment, a section header nor a
// key = value pair.
type SyntaxError struct {
	LineNo  int
	Text    string
	Context string
}

// UnknownKeyError is a key or section the schema does not define.
type UnknownKeyError struct {
	LineNo  int
	Section string
	Key     string
	Context string
}

// ValueError is a value that does not decode into the key's type.
type ValueError struct {
	LineNo  int
	Key     string
	Value   string
	Err     error
	Context string
}

// MissingKeyError is a required key absent from its section.
type MissingKeyError struct {
	Section string
	Key     string
	Context string
}

func (*SyntaxError) parseError()     {}
func (*UnknownKeyError) parseError() {}
func (*ValueError) parseError()      {}
func (*MissingKeyError) parseError() {}

func (e *SyntaxError) Line() int     { return e.LineNo }
func (e *UnknownKeyError) Line() int { return e.LineNo }
func (e *ValueError) Line() int      { return e.LineNo }
func (e *MissingKeyError) Line() int { return 0 }

func (e *SyntaxError) Error() string {
	return withContext(e.Context, fmt.Sprintf("line %d: syntax error: %q", e.LineNo, e.Text))
}

func (e *UnknownKeyError) Error() string {
	if e.Key == "" {
		return withContext(e.Context, fmt.Sprintf("line %d: unknown section [%s]", e.LineNo, e.Section))
	}
	return withContext(e.Context, fmt.Sprintf("line %d: unknown key %q in [%s]", e.LineNo, e.Key, e.Section))
}

func (e *ValueError) Error() string {
	return withContext(e.Context, fmt.Sprintf("line %d: bad value %q for %s: %v", e.LineNo, e.Value, e.Key, e.Err))
}

func (e *MissingKeyError) Error() string {
	return withContext(e.Context, fmt.Sprintf("missing key %q in [%s]", e.Key, e.Section))
}

func (e *ValueError) Unwrap() error { return e.Err }

func (e *SyntaxError) WithContext(ctx string) ParseError {
	n := *e
	n.Context = ctx
	return &n
}

func (e *UnknownKeyError) WithContext(ctx string) ParseError {
	n := *e
	n.Context = ctx
	return &n
}

func (e *ValueError) WithContext(ctx string) ParseError {
	n := *e
	n.Context = ctx
	return &n
}

func (e *MissingKeyError) WithContext(ctx string) ParseError {
	n := *e
	n.Context = ctx
	return &n
}

func withContext(ctx, msg string) string {
	if ctx == "" {
		return msg
	}
	return "while " + ctx + " got error: " + msg
}
