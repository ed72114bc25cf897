// integration_test.go — both storage strategies across several call layers.
package errwhile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
)

// decodeError is a context-aware error keeping a history of labels, the
// append-style alternative to fooError's overwrite.
type decodeError struct {
	Offset int
	Labels []string
}

func (e *decodeError) Error() string {
	msg := fmt.Sprintf("bad byte at offset %d", e.Offset)
	for _, l := range e.Labels {
		msg = "while " + l + ": " + msg
	}
	return msg
}

func (e *decodeError) WithContext(ctx string) *decodeError {
	labels := make([]string, len(e.Labels), len(e.Labels)+1)
	copy(labels, e.Labels)
	return &decodeError{Offset: e.Offset, Labels: append(labels, ctx)}
}

func decodeField(b []byte, name string) (string, *decodeError) {
	return InContextOf("decoding field "+name, func() (string, *decodeError) {
		for i, c := range b {
			if c == 0 {
				return "", &decodeError{Offset: i}
			}
		}
		return string(b), nil
	})
}

func decodeRecord(b []byte) (string, *decodeError) {
	v, err := decodeField(b, "name")
	return ErrorWhile(v, err, "decoding record")
}

func loadRecord(fsys fs.FS, path string) (string, error) {
	return WrapInContextOfFunc(func() string { return "loading " + path }, func() (string, error) {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return "", Wrap(err, "reading file")
		}
		v, derr := decodeRecord(b)
		if derr != nil {
			return "", derr
		}
		return v, nil
	})
}

func TestIntegration_ContextAwareThenWrapped(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"bad.rec": {Data: []byte("ab\x00c")}}
	_, err := loadRecord(fsys, "bad.rec")
	if err == nil {
		t.Fatalf("expected error")
	}

	want := "while loading bad.rec got error: while decoding record: while decoding field name: bad byte at offset 2"
	if got := err.Error(); got != want {
		t.Fatalf("Error():\n got=%q\nwant=%q", got, want)
	}

	var de *decodeError
	if !errors.As(err, &de) {
		t.Fatalf("errors.As(*decodeError)=false")
	}
	if de.Offset != 2 || strings.Join(de.Labels, ",") != "decoding field name,decoding record" {
		t.Fatalf("decodeError=%+v", de)
	}
	if got := Contexts(err); len(got) != 1 || got[0] != "loading bad.rec" {
		t.Fatalf("Contexts=%v want only the envelope token", got)
	}
}

func TestIntegration_MissingFileKeepsIdentity(t *testing.T) {
	t.Parallel()

	_, err := loadRecord(fstest.MapFS{}, "missing.rec")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("errors.Is(err, fs.ErrNotExist)=false: %v", err)
	}
	if !strings.HasPrefix(err.Error(), "while loading missing.rec got error: while reading file got error: open missing.rec") {
		t.Fatalf("Error()=%q", err.Error())
	}
	var pe *fs.PathError
	if !errors.As(err, &pe) || pe.Path != "missing.rec" {
		t.Fatalf("errors.As(*fs.PathError) failed: %v", err)
	}
	if got := Contexts(err); len(got) != 2 {
		t.Fatalf("Contexts=%v want 2 tokens", got)
	}
}

func TestIntegration_SuccessNoContext(t *testing.T) {
	t.Parallel()

	v, err := loadRecord(fstest.MapFS{"ok.rec": {Data: []byte("fish")}}, "ok.rec")
	if err != nil || v != "fish" {
		t.Fatalf("v=%q err=%v", v, err)
	}
}

func TestIntegration_MixedTokenTypesAndJoin(t *testing.T) {
	t.Parallel()

	type attempt int
	a := Wrap(io.ErrUnexpectedEOF, attempt(1))
	b := Wrap(io.ErrUnexpectedEOF, attempt(2))
	err := Wrap(errors.Join(a, b), "fetching manifest")

	if got := Contexts(err); len(got) != 3 || got[0] != "fetching manifest" || got[1] != attempt(1) || got[2] != attempt(2) {
		t.Fatalf("Contexts=%v", got)
	}
	n, ok := ContextOf[attempt](err)
	if !ok || n != 1 {
		t.Fatalf("ContextOf[attempt]=(%v,%v)", n, ok)
	}
}
