package errwhile

import (
	"errors"
	"testing"
	"testing/quick"
)

func TestQuickNestedDisplayComposes(t *testing.T) {
	property := func(msg string, ctxs []string) bool {
		var err error = errors.New(msg)
		want := msg
		for _, c := range ctxs {
			err = Wrap(err, c)
			want = "while " + c + " got error: " + want
		}
		return err.Error() == want
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("nested display property failed: %v", err)
	}
}

func TestQuickContextsReverseAttachOrder(t *testing.T) {
	property := func(ctxs []string) bool {
		var err error = errors.New("base")
		for _, c := range ctxs {
			err = Wrap(err, c)
		}
		got := Contexts(err)
		if len(got) != len(ctxs) {
			return false
		}
		for i := range ctxs {
			if got[i] != ctxs[len(ctxs)-1-i] {
				return false
			}
		}
		return true
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("contexts order property failed: %v", err)
	}
}

func TestQuickStripReachesBase(t *testing.T) {
	property := func(msg string, depth uint8) bool {
		base := errors.New(msg)
		var err error = base
		for i := 0; i < int(depth%32); i++ {
			err = Wrap(err, i)
		}
		return Strip(err) == base && errors.Is(err, base)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("strip property failed: %v", err)
	}
}
