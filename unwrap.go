// unwrap.go — traversal and inspection of context chains.
//
// The core contract never flattens: envelopes nest, and reading "all the
// context" means walking the structure. These helpers do that walk.
//
// Two chains exist for every error:
//   - the Unwrap chain (errors.Is/As), which includes envelope layers;
//   - the Source chain (diagnostics), which skips them.
//
// Design notes (Go ≥1.20):
//   - Walk understands both Unwrap() error and Unwrap() []error.
//   - A map[error] "seen" set panics for non-comparable dynamic types, so
//     comparable values are keyed by value and pointers by address.
package errwhile

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxDepth caps traversal of pathological graphs.
const maxDepth = 1 << 12

func isComparable(err error) bool {
	return err != nil && reflect.TypeOf(err).Comparable()
}

func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}

// markSeen returns true if err was newly marked; false if already seen.
// Non-comparable, non-pointer values are always treated as new.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if err == nil {
		return false
	}
	if isComparable(err) {
		if _, ok := seenErr[err]; ok {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
	}
	return true
}

// Walk visits each distinct node of err's unwrap graph in pre-order. It stops
// when visit returns false. Cycles are visited once; nil is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	stack := make([]error, 0, 8)
	seenErr := make(map[error]struct{}, 16)
	seenPtr := make(map[uintptr]struct{}, 16)

	stack = append(stack, err)
	_ = markSeen(err, seenErr, seenPtr)

	for len(stack) > 0 && len(stack) < maxDepth {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		// Push children in reverse so the leftmost is visited first.
		if m, ok := cur.(multiUnwrapper); ok {
			kids := m.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if c := kids[i]; c != nil && markSeen(c, seenErr, seenPtr) {
					stack = append(stack, c)
				}
			}
			continue
		}
		if s, ok := cur.(singleUnwrapper); ok {
			if u := s.Unwrap(); !isNil(u) && markSeen(u, seenErr, seenPtr) {
				stack = append(stack, u)
			}
		}
	}
}

// Contexts returns the token of every envelope reachable from err, outermost
// first. Envelopes hidden behind foreign wrappers (fmt.Errorf("%w"),
// errors.Join) are found too.
func Contexts(err error) []any {
	var out []any
	Walk(err, func(e error) bool {
		if l, ok := e.(layer); ok {
			out = append(out, l.contextToken())
		}
		return true
	})
	return out
}

// ContextOf returns the outermost token whose dynamic type is exactly C.
func ContextOf[C any](err error) (C, bool) {
	var (
		found C
		ok    bool
	)
	Walk(err, func(e error) bool {
		l, isLayer := e.(layer)
		if !isLayer {
			return true
		}
		if c, match := l.contextToken().(C); match {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Strip removes every leading envelope and marker layer and returns the first
// error that is neither. It does not look through foreign wrappers.
func Strip(err error) error {
	for i := 0; i < maxDepth; i++ {
		in, ok := err.(interface{ innerError() error })
		if !ok {
			return err
		}
		err = in.innerError()
	}
	return err
}

// Source returns err's cause for diagnostic purposes. Envelopes and markers
// report the cause of the failure they wrap; other errors report
// errors.Unwrap.
func Source(err error) error {
	return sourceOf(err)
}

// SourceChain returns the hop-by-hop cause chain starting at the failure
// behind err. Context layers never appear as links, and neither does a nil
// failure: an envelope built by WrapContext around nil yields an empty chain.
func SourceChain(err error) []error {
	root := Strip(err)
	if isNil(root) {
		return nil
	}
	out := []error{root}
	for cur := Source(err); !isNil(cur) && len(out) < maxDepth; cur = Source(cur) {
		out = append(out, Strip(cur))
	}
	return out
}

// HasContext reports whether any envelope is reachable from err.
func HasContext(err error) bool {
	found := false
	Walk(err, func(e error) bool {
		_, found = e.(layer)
		return !found
	})
	return found
}

// IsRootCause reports whether err itself is a marker with no context yet.
func IsRootCause(err error) bool {
	if isNil(err) {
		return false
	}
	_, isWrapper := err.(interface{ innerError() error })
	_, isLayer := err.(layer)
	return isWrapper && !isLayer
}

// Has reports whether target appears anywhere in err's unwrap graph.
func Has(err, target error) bool {
	if err == nil || target == nil {
		return false
	}
	return errors.Is(err, target)
}
