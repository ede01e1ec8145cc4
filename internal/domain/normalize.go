package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. Applied to client first/last names before the presence check.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ValidEmail reports whether s passes the minimal shape check enforced at the
// transport edge. Deliverability is not this system's concern.
func ValidEmail(s string) bool {
	return strings.Contains(s, "@")
}
