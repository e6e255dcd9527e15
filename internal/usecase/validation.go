package usecase

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors carries per-field messages for a rejected creation request.
// The whole operation fails atomically; no partial property is ever stored.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed")
	for _, f := range fields {
		fmt.Fprintf(&b, "; %s: %s", f, v[f])
	}
	return b.String()
}
