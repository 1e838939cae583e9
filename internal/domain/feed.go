package domain

import (
	"time"

	"github.com/google/uuid"
)

// OfficialUpdate is one scraped item from the official news source.
type OfficialUpdate struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Summary string `json:"summary"`
}

type SocialPost struct {
	User string `json:"user"`
	Post string `json:"post"`
}

type Resource struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	LocationName   string      `json:"location_name"`
	Location       Coordinates `json:"location"`
	DistanceMeters float64     `json:"distance_meters"`
	CreatedAt      time.Time   `json:"created_at"`
}
