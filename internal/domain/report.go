package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	VerificationUnset        VerificationStatus = ""
	VerificationVerified     VerificationStatus = "verified"
	VerificationFake         VerificationStatus = "fake"
	VerificationInconclusive VerificationStatus = "inconclusive"
)

type Report struct {
	ID                 uuid.UUID          `json:"id"`
	DisasterID         uuid.UUID          `json:"disaster_id"`
	Content            string             `json:"content"`
	ImageURL           string             `json:"image_url,omitempty"`
	UserID             string             `json:"user_id"`
	VerificationStatus VerificationStatus `json:"verification_status,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
}

type CreateReportRequest struct {
	DisasterID string `json:"disaster_id" validate:"required,uuid"`
	Content    string `json:"content" validate:"required"`
	ImageURL   string `json:"image_url" validate:"omitempty,url"`
}

type VerifyImageRequest struct {
	ReportID string `json:"reportId" validate:"required,uuid"`
	ImageURL string `json:"imageUrl" validate:"required,url"`
}

type VerificationResult struct {
	ReportID uuid.UUID          `json:"reportId"`
	Status   VerificationStatus `json:"status"`
	Analysis string             `json:"analysis"`
}

// ClassifyAnalysis derives the three-way verification outcome from the
// model's free-text analysis. Substring matches are case-insensitive and
// "authentic" is checked before "manipulated"; first match wins.
func ClassifyAnalysis(analysis string) VerificationStatus {
	lower := strings.ToLower(analysis)
	switch {
	case strings.Contains(lower, "authentic"):
		return VerificationVerified
	case strings.Contains(lower, "manipulated"):
		return VerificationFake
	default:
		return VerificationInconclusive
	}
}
