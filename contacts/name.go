package contacts

import (
	"strings"
)

// Formats a contact name as "Last, First". Returns "" if either part is blank.
func FullName(first, last string) string {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return ""
	}
	return last + ", " + first
}
