// Package errwhilezap renders errwhile context chains as structured zap fields.
//
// The core package stays free of logging; this adapter turns
//
//	while loading config got error: while opening file got error: open x: permission denied
//
// into
//
//	{"error": {"message": "...", "contexts": ["loading config", "opening file"],
//	           "root": "open x: permission denied", "root_type": "*fs.PathError",
//	           "sources": ["permission denied"]}}
package errwhilezap

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	errwhile "github.com/xgx-io/xgx-errwhile"
)

// Error is NamedError("error", err).
func Error(err error) zap.Field {
	return NamedError("error", err)
}

// NamedError describes err and its context chain under key. A nil err is
// skipped, matching zap.NamedError.
func NamedError(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	return zap.Object(key, chain{err: err})
}

// Contexts logs only the context tokens of err, outermost first.
func Contexts(key string, err error) zap.Field {
	tokens := errwhile.Contexts(err)
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = fmt.Sprint(t)
	}
	return zap.Strings(key, out)
}

type chain struct {
	err error
}

func (c chain) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("message", c.err.Error())

	if tokens := errwhile.Contexts(c.err); len(tokens) > 0 {
		if err := enc.AddArray("contexts", stringers(tokens)); err != nil {
			return err
		}
	}

	sources := errwhile.SourceChain(c.err)
	if len(sources) == 0 {
		// an envelope around a nil failure
		enc.AddString("root", "<nil>")
		return nil
	}
	root := sources[0]
	enc.AddString("root", root.Error())
	enc.AddString("root_type", fmt.Sprintf("%T", root))
	if len(sources) > 1 {
		causes := make([]any, 0, len(sources)-1)
		for _, s := range sources[1:] {
			causes = append(causes, s.Error())
		}
		return enc.AddArray("sources", stringers(causes))
	}
	return nil
}

// stringers encodes each element with its display form.
type stringers []any

func (s stringers) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range s {
		enc.AppendString(fmt.Sprint(v))
	}
	return nil
}
