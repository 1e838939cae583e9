package domain

import "time"

// Event channel names pushed to connected real-time subscribers.
const (
	EventDisasterUpdated    = "disaster_updated"
	EventSocialMediaUpdated = "social_media_updated"
	EventResourcesUpdated   = "resources_updated"
	EventReportVerified     = "report_verified"
)

// Event describes a completed state change fanned out to subscribers.
// Delivery is best-effort and unordered; it is a side channel, not part
// of any request/response contract.
type Event struct {
	Name       string    `json:"event"`
	Action     string    `json:"action,omitempty"`
	Payload    any       `json:"payload,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
