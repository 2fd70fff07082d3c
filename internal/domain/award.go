package domain

import "time"

// Award is the one-per-user recognition granted once a user's submission
// totals cross the configured thresholds. Created exactly once; never
// updated or deleted. At-most-once issuance is enforced by the store's
// UNIQUE constraint on recipient_id.
type Award struct {
	RecipientID int64
	AwardTime   time.Time
}
