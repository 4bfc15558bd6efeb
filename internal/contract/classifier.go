package contract

import "time"

// Category is the derived temporal classification of a contract. Every
// filter, badge, and statistic must go through Classify rather than
// re-deriving it.
type Category string

const (
	CategoryActive     Category = "active"
	CategoryExpiring   Category = "expiring"
	CategoryExpired    Category = "expired"
	CategoryTerminated Category = "terminated"
	CategoryUnknown    Category = "unknown"
)

// ExpiryWindow is how far ahead of the end date a contract starts
// counting as expiring. The boundary is inclusive: an end date exactly
// 30 days away is expiring.
const ExpiryWindow = 30 * 24 * time.Hour

// Classify maps a contract and the current time to its lifecycle
// category. It is a pure function of (status, end date, now).
func Classify(c *Contract, now time.Time) Category {
	switch c.Status {
	case StatusTerminated, StatusCancelled:
		return CategoryTerminated
	case StatusActive:
		if c.EndDate == nil {
			return CategoryActive
		}

		diff := c.EndDate.Sub(now)
		switch {
		case diff < 0:
			return CategoryExpired
		case diff <= ExpiryWindow:
			return CategoryExpiring
		default:
			return CategoryActive
		}
	default:
		return CategoryUnknown
	}
}
