package domain

import "math"

type ReviewKind string

const (
	ReviewEvent  ReviewKind = "event"
	ReviewVendor ReviewKind = "vendor"
)

const ReviewPublished = "published"

// Review targets an event (SubjectID = event id) or a vendor
// (SubjectID = vendor id). EventID is the event the review is about in
// both cases.
type Review struct {
	ID          uint       `json:"review_id"`
	Kind        ReviewKind `json:"kind"`
	SubjectID   uint       `json:"subject_id"`
	EventID     uint       `json:"event_id"`
	Rating      float64    `json:"rating"`
	Comments    string     `json:"comments"`
	Suggestions string     `json:"suggestions"`
	ReviewerID  uint       `json:"reviewer_id"`
	CreatedAt   Timestamp  `json:"created_at"`
	Status      string     `json:"status"`
}

// QuantizeRating clamps r to [0, 5] and rounds it to the nearest half step.
func QuantizeRating(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return math.Round(r*2) / 2
}
