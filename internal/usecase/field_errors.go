package usecase

import (
	"sort"
	"strings"
)

// FieldErrors maps a JSON field name to the message shown next to it. A
// non-empty FieldErrors blocks the operation that returned it.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}
