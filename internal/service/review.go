package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

type ReviewInput struct {
	Rating      *float64
	Comments    string
	Suggestions string
}

func (in ReviewInput) validate() error {
	if in.Rating == nil {
		return domain.ErrMissingRating
	}
	if strings.TrimSpace(in.Comments) == "" {
		return domain.ErrMissingComment
	}
	return nil
}

type ReviewService struct {
	store Store
	clock clock.Clock
}

func NewReviewService(store Store, clk clock.Clock) *ReviewService {
	return &ReviewService{
		store: store,
		clock: clk,
	}
}

// SubmitEventReview lets an attendee holding a valid ticket review an
// event once it has begun. The organizer is notified.
func (s *ReviewService) SubmitEventReview(ctx context.Context, reviewerID, eventID uint, in ReviewInput) (domain.Review, error) {
	var created domain.Review
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		now := s.clock.Now()

		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if u, ok := tx.FindUser(reviewerID); !ok || !tx.Users[u].IsAttendee() {
			return domain.ErrUnauthorizedReviewer
		}
		if !holdsValidTicket(tx.Snapshot, reviewerID, eventID) {
			return domain.ErrUnauthorizedReviewer
		}
		if !ev.HasStarted(now) {
			return domain.ErrEventNotStarted
		}
		if err := in.validate(); err != nil {
			return err
		}

		created = appendReview(tx, now, domain.ReviewEvent, eventID, eventID, reviewerID, in)
		notify(tx, now, ev.OrganizerID,
			"New event review",
			fmt.Sprintf("%s received a %.1f/5 review.", ev.Title, created.Rating),
			domain.ReviewPostedPayload{
				ReviewID: created.ID,
				Kind:     domain.ReviewEvent,
				EventID:  eventID,
				Rating:   created.Rating,
			},
		)
		return nil
	})
	metrics.TrackOperation("review_event", err)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("event reviewed",
		zap.Uint("review_id", created.ID),
		zap.Uint("event_id", eventID),
		zap.Float64("rating", created.Rating),
	)
	return created, nil
}

// SubmitVendorReview lets the organizer review a vendor that served the
// event, once the event is fully over. The vendor is notified.
func (s *ReviewService) SubmitVendorReview(ctx context.Context, organizerID, vendorID, eventID uint, in ReviewInput) (domain.Review, error) {
	var created domain.Review
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		now := s.clock.Now()

		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if ev.OrganizerID != organizerID {
			return domain.ErrUnauthorizedReviewer
		}
		if v, ok := tx.FindUser(vendorID); !ok || !tx.Users[v].IsVendor() {
			return domain.ErrUserNotFound
		}
		if !ev.IsOver(now) {
			return domain.ErrEventNotCompleted
		}
		if !vendorServed(tx.Snapshot, vendorID, eventID) {
			return domain.ErrUnauthorizedReviewer
		}
		if err := in.validate(); err != nil {
			return err
		}

		created = appendReview(tx, now, domain.ReviewVendor, vendorID, eventID, organizerID, in)
		notify(tx, now, vendorID,
			"New review",
			fmt.Sprintf("You received a %.1f/5 review for %s.", created.Rating, ev.Title),
			domain.ReviewPostedPayload{
				ReviewID: created.ID,
				Kind:     domain.ReviewVendor,
				EventID:  eventID,
				Rating:   created.Rating,
			},
		)
		return nil
	})
	metrics.TrackOperation("review_vendor", err)
	if err != nil {
		return domain.Review{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("vendor reviewed",
		zap.Uint("review_id", created.ID),
		zap.Uint("vendor_id", vendorID),
		zap.Uint("event_id", eventID),
	)
	return created, nil
}

// ListReviews returns the reviews about one event or one vendor.
func (s *ReviewService) ListReviews(ctx context.Context, kind domain.ReviewKind, subjectID uint) ([]domain.Review, error) {
	out := []domain.Review{}
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		for _, r := range snap.Reviews {
			if r.Kind == kind && r.SubjectID == subjectID {
				out = append(out, r)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}

func appendReview(tx *repository.Tx, now time.Time, kind domain.ReviewKind, subjectID, eventID, reviewerID uint, in ReviewInput) domain.Review {
	r := domain.Review{
		ID:          tx.NextID(repository.Reviews),
		Kind:        kind,
		SubjectID:   subjectID,
		EventID:     eventID,
		Rating:      domain.QuantizeRating(*in.Rating),
		Comments:    strings.TrimSpace(in.Comments),
		Suggestions: strings.TrimSpace(in.Suggestions),
		ReviewerID:  reviewerID,
		CreatedAt:   domain.Timestamp{Time: now},
		Status:      domain.ReviewPublished,
	}
	tx.Reviews = append(tx.Reviews, r)
	tx.Touch(repository.Reviews)
	return r
}

func holdsValidTicket(snap *repository.Snapshot, userID, eventID uint) bool {
	for _, t := range snap.Tickets {
		if t.UserID == userID && t.EventID == eventID && t.Status == domain.TicketValid && t.QuantityBought > 0 {
			return true
		}
	}
	return false
}

func vendorServed(snap *repository.Snapshot, vendorID, eventID uint) bool {
	for _, sv := range snap.Services {
		if sv.VendorID == vendorID && sv.LinkedTo(eventID) {
			return true
		}
	}
	return false
}
