package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/eventhub/internal/service"
)

// ReviewRequest leaves rating and comment checks to the review service so
// they surface as MissingRating and MissingComment.
type ReviewRequest struct {
	Rating      *float64 `json:"rating"`
	Comments    string   `json:"comments"`
	Suggestions string   `json:"suggestions"`
}

func (req *ReviewRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Comments, validation.Length(0, 2000)),
		validation.Field(&req.Suggestions, validation.Length(0, 2000)),
	)
}

func (req *ReviewRequest) Input() service.ReviewInput {
	return service.ReviewInput{
		Rating:      req.Rating,
		Comments:    req.Comments,
		Suggestions: req.Suggestions,
	}
}
