package types

type EventType string

const (
	BanRequested EventType = "ban_requested"
	BanApproved  EventType = "ban_approved"
	BanDenied    EventType = "ban_denied"
	BanTimedOut  EventType = "ban_timed_out"
	BanRemoved   EventType = "ban_removed"
)

// Payload logged alongside every moderation event.
type BanEvent struct {
	Target   string `json:"target"`
	TargetID string `json:"target_id"`
	Issuer   string `json:"issuer"`
	Duration string `json:"duration"`
}
