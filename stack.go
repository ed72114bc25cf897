// stack.go — opt-in stack capture for root causes.
//
// Only ToRootCauseWithStack captures. The stack is taken once, where the
// failure enters the context chain, and is shared by every envelope built on
// top of it; attaching context never recaptures.
//
// runtime.CallersFrames is used rather than FuncForPC so inlined calls
// resolve correctly.
package errwhile

import (
	"runtime"
)

// Frame is one call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string // fully-qualified, e.g. pkg.Func or pkg.(*T).Method
}

// Stack is a list of frames, most recent call first.
type Stack []Frame

const defaultMaxDepth = 64

// captureStackDefault captures up to defaultMaxDepth frames. With skip == 0
// the first frame is the direct caller of captureStackDefault.
func captureStackDefault(skip int) Stack {
	return captureStack(skip, defaultMaxDepth)
}

// captureStack adds 3 to skip for runtime.Callers, captureStack and
// captureStackDefault.
func captureStack(skip, maxDepth int) Stack {
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}
	pc := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+3, pc)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}
