package billing

import "strings"

// IsEntitlingStatus reports whether a provider subscription status still
// grants the mapped tier. Grace-period statuses keep entitling until the
// provider flips them to a terminal state.
func IsEntitlingStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "trialing", "past_due":
		return true
	default:
		return false
	}
}
