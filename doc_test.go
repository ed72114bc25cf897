// doc_test.go — package documentation stays readable in godoc.
package errwhile

import (
	"os"
	"strings"
	"testing"
)

func TestDoc_TableColumnsAligned(t *testing.T) {
	t.Parallel()

	src, err := os.ReadFile("doc.go")
	if err != nil {
		t.Fatalf("read doc.go: %v", err)
	}
	width := -1
	rows := 0
	for _, line := range strings.Split(string(src), "\n") {
		if !strings.HasPrefix(line, "//\t+") && !strings.HasPrefix(line, "//\t|") {
			continue
		}
		rows++
		if width == -1 {
			width = len(line)
		}
		if len(line) != width {
			t.Fatalf("table row width=%d want=%d: %q", len(line), width, line)
		}
	}
	if rows == 0 {
		t.Fatalf("doc.go has no table")
	}
}
