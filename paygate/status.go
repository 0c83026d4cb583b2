package paygate

import "strings"

// CallbackStatus is the closed set of invoice statuses the provider sends on
// webhook callbacks. Anything outside this set is unknown, which is reported
// differently from a recognized status the platform chooses not to act on.
type CallbackStatus string

const (
	StatusPaid    CallbackStatus = "PAID"
	StatusSettled CallbackStatus = "SETTLED"
	StatusExpired CallbackStatus = "EXPIRED"
	StatusFailed  CallbackStatus = "FAILED"
	StatusPending CallbackStatus = "PENDING"
)

func ParseCallbackStatus(s string) (CallbackStatus, bool) {
	switch CallbackStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPaid:
		return StatusPaid, true
	case StatusSettled:
		return StatusSettled, true
	case StatusExpired:
		return StatusExpired, true
	case StatusFailed:
		return StatusFailed, true
	case StatusPending:
		return StatusPending, true
	default:
		return "", false
	}
}
