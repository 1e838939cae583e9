package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
)

// AuditEntry is one element of a disaster's append-only audit trail.
// Entries are only ever appended, never rewritten.
type AuditEntry struct {
	Action    string    `json:"action"`
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lon float64 `json:"lon" validate:"lng"`
}

type Disaster struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Tags         []string     `json:"tags"`
	OwnerID      string       `json:"owner_id"`
	LocationName string       `json:"location_name"`
	Location     Coordinates  `json:"location"`
	AuditTrail   []AuditEntry `json:"audit_trail"`
	CreatedAt    time.Time    `json:"created_at"`
}

type CreateDisasterRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Tags         string `json:"tags"`
	LocationName string `json:"location_name"`
}

type UpdateDisasterRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Tags        string `json:"tags"`
}

// SplitTags turns the comma-separated tags field into a trimmed list.
// Always returns a non-nil slice so records serialize as [] rather than null.
func SplitTags(csv string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
