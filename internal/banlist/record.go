package banlist

import "time"

// Model for one active temporary ban.
//
// Username is best effort: if the target could not be fetched from the
// Discord API it will hold "Unknown User". Duration keeps the original
// token (like "14d") so the sweeper can re-evaluate it against BanDate.
type Record struct {
	Username   string
	UserID     string
	ApprovedBy string
	Duration   string
	Reason     string
	BanDate    time.Time
}
