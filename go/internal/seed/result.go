package seed

import (
	"fmt"
	"strings"

	"github.com/mcdev12/hockeyfed/go/internal/collection"
)

// Result tracks what a seeding pass wrote and what failed.
type Result struct {
	Seeded  map[collection.Kind]int
	Skipped []collection.Kind
	Errors  []string
}

func newResult() Result {
	return Result{Seeded: make(map[collection.Kind]int)}
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// OK reports whether every collection was handled without error.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Summary returns a human-readable summary of the seeding pass.
func (r Result) Summary() string {
	var parts []string
	for _, kind := range collection.Kinds() {
		if n, ok := r.Seeded[kind]; ok {
			parts = append(parts, fmt.Sprintf("%s=%d", kind, n))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing seeded")
	}
	return fmt.Sprintf("%s skipped=%d errors=%d", strings.Join(parts, " "), len(r.Skipped), len(r.Errors))
}
