// stack_test.go — stack capture offsets and metadata.
package errwhile

import (
	"io"
	"strings"
	"testing"
)

func stackGrab(skipExtra int) Stack {
	return captureStackDefault(skipExtra + 1)
}

func stackTestLevel2(skipExtra int) Stack {
	return stackGrab(skipExtra)
}

func stackTestLevel1(skipExtra int) Stack {
	return stackTestLevel2(skipExtra)
}

func openThing() *RootCause[error, string] {
	return ToRootCauseWithStack[string](io.ErrUnexpectedEOF)
}

func TestCaptureStack_DepthBounds(t *testing.T) {
	t.Parallel()

	s := captureStack(0, 0)
	if len(s) == 0 || len(s) > defaultMaxDepth {
		t.Fatalf("maxDepth<=0 must fall back to default: len=%d", len(s))
	}
	const limit = 3
	if s := captureStack(0, limit); len(s) == 0 || len(s) > limit {
		t.Fatalf("expected 1..%d frames, got %d", limit, len(s))
	}
}

func TestCaptureStack_SkipOffsets(t *testing.T) {
	t.Parallel()

	s0 := stackTestLevel1(0)
	if len(s0) == 0 || !strings.HasSuffix(s0[0].Function, "stackTestLevel2") {
		t.Fatalf("skipExtra=0: first frame=%v want stackTestLevel2", s0)
	}
	s1 := stackTestLevel1(1)
	if len(s1) == 0 || !strings.HasSuffix(s1[0].Function, "stackTestLevel1") {
		t.Fatalf("skipExtra=1: first frame=%v want stackTestLevel1", s1)
	}
}

func TestCaptureStack_NilWhenEverythingSkipped(t *testing.T) {
	t.Parallel()

	if s := captureStack(1<<20, 16); s != nil {
		t.Fatalf("expected nil stack, got len=%d", len(s))
	}
}

func TestStack_MetadataPresence(t *testing.T) {
	t.Parallel()

	s := stackTestLevel1(0)
	n := len(s)
	if n > 5 {
		n = 5
	}
	for i := 0; i < n; i++ {
		fr := s[i]
		if fr.PC == 0 || fr.Function == "" || fr.File == "" || fr.Line <= 0 {
			t.Fatalf("frame %d incomplete: %+v", i, fr)
		}
		if strings.Contains(fr.Function, "captureStack") {
			t.Fatalf("internal helper leaked into frame %d: %q", i, fr.Function)
		}
	}
}

func TestToRootCauseWithStack_StartsAtCaller(t *testing.T) {
	t.Parallel()

	rc := openThing()
	stk := rc.Stack()
	if len(stk) < 2 {
		t.Fatalf("stack too short: %d", len(stk))
	}
	if !strings.HasSuffix(stk[0].Function, "openThing") {
		t.Fatalf("first frame=%q want openThing", stk[0].Function)
	}
	if !strings.HasSuffix(stk[1].Function, "TestToRootCauseWithStack_StartsAtCaller") {
		t.Fatalf("second frame=%q want the test", stk[1].Function)
	}
}
