package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

type CollaborationService struct {
	store Store
	clock clock.Clock
}

func NewCollaborationService(store Store, clk clock.Clock) *CollaborationService {
	return &CollaborationService{
		store: store,
		clock: clk,
	}
}

// Request asks a vendor to provide one of their services at an event the
// organizer runs.
func (s *CollaborationService) Request(ctx context.Context, organizerID, eventID, vendorID, serviceID uint) (domain.CollaborationRequest, error) {
	var created domain.CollaborationRequest
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		orgIdx, ok := tx.FindUser(organizerID)
		if !ok {
			return domain.ErrUserNotFound
		}
		organizer := tx.Users[orgIdx]
		if !organizer.IsOrganizer() {
			return domain.ErrIllegalUser
		}
		evIdx, ok := tx.FindEvent(eventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if ev.OrganizerID != organizerID {
			return domain.ErrOwnershipMismatch
		}
		vendorIdx, ok := tx.FindUser(vendorID)
		if !ok {
			return domain.ErrUserNotFound
		}
		if !tx.Users[vendorIdx].IsVendor() {
			return domain.ErrIllegalUser
		}
		svcIdx, ok := tx.FindService(serviceID)
		if !ok {
			return domain.ErrServiceNotFound
		}
		svc := tx.Services[svcIdx]
		if svc.VendorID != vendorID {
			return domain.ErrOwnershipMismatch
		}
		if svc.Status != domain.ServiceAvailable {
			return domain.ErrServiceUnavailable
		}

		now := s.clock.Now()
		created = domain.CollaborationRequest{
			ID:          tx.NextID(repository.CollaborationRequests),
			EventID:     eventID,
			OrganizerID: organizerID,
			VendorID:    vendorID,
			ServiceID:   serviceID,
			Status:      domain.RequestPending,
			Timestamp:   domain.Timestamp{Time: now},
		}
		tx.CollaborationRequests = append(tx.CollaborationRequests, created)
		tx.Touch(repository.CollaborationRequests)

		notify(tx, now, vendorID,
			"Collaboration request",
			fmt.Sprintf("%s would like to book %s for %s.", organizer.FullName(), svc.Name, ev.Title),
			domain.PendingCollaborationPayload{
				RequestID:      created.ID,
				OrganizerID:    organizerID,
				OrganizerName:  organizer.FullName(),
				OrganizerEmail: organizer.Email,
				OrganizerPhone: organizer.Phone,
				EventID:        eventID,
				EventTitle:     ev.Title,
				EventDate:      ev.StartDate,
				EventLocation:  ev.Location,
				ServiceID:      serviceID,
				ServiceName:    svc.Name,
			},
		)
		return nil
	})
	metrics.TrackOperation("collaboration_request", err)
	if err != nil {
		return domain.CollaborationRequest{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("collaboration requested",
		zap.Uint("request_id", created.ID),
		zap.Uint("organizer_id", organizerID),
		zap.Uint("vendor_id", vendorID),
		zap.Uint("service_id", serviceID),
	)
	return created, nil
}

// Respond records the vendor's answer. Accepting links the service to the
// event. A service booked elsewhere in the meantime cannot be accepted and
// the request stays pending.
func (s *CollaborationService) Respond(ctx context.Context, vendorID, requestID uint, accept bool) (domain.CollaborationRequest, error) {
	var result domain.CollaborationRequest
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		i, ok := tx.FindCollaborationRequest(requestID)
		if !ok {
			return domain.ErrRequestNotFound
		}
		req := &tx.CollaborationRequests[i]
		if req.VendorID != vendorID {
			return domain.ErrOwnershipMismatch
		}
		if req.Status != domain.RequestPending {
			return domain.ErrRequestNotPending
		}

		now := s.clock.Now()
		status := domain.RequestRejected
		if accept {
			svcIdx, ok := tx.FindService(req.ServiceID)
			if !ok {
				return domain.ErrServiceNotFound
			}
			svc := &tx.Services[svcIdx]
			if svc.Status != domain.ServiceAvailable {
				return domain.ErrServiceUnavailable
			}
			eventID := req.EventID
			svc.EventID = &eventID
			svc.Status = domain.ServiceAssigned
			tx.Touch(repository.Services)
			status = domain.RequestAccepted
		}

		req.Status = status
		req.ResponseTimestamp = domain.Timestamp{Time: now}
		tx.Touch(repository.CollaborationRequests)

		vendorName := "The vendor"
		if v, ok := tx.FindUser(vendorID); ok {
			vendorName = tx.Users[v].FullName()
		}
		notify(tx, now, req.OrganizerID,
			"Collaboration "+string(status),
			fmt.Sprintf("%s has %s your collaboration request.", vendorName, status),
			domain.CollaborationOutcomePayload{
				RequestID: req.ID,
				EventID:   req.EventID,
				ServiceID: req.ServiceID,
				Status:    status,
			},
		)

		result = *req
		return nil
	})
	metrics.TrackOperation("collaboration_respond", err)
	if err != nil {
		return domain.CollaborationRequest{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("collaboration answered",
		zap.Uint("request_id", requestID),
		zap.String("status", string(result.Status)),
	)
	return result, nil
}

// CompleteService lets the organizer close an assigned service once the
// event is over.
func (s *CollaborationService) CompleteService(ctx context.Context, organizerID, serviceID uint) (domain.Service, error) {
	var result domain.Service
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		svcIdx, ok := tx.FindService(serviceID)
		if !ok {
			return domain.ErrServiceNotFound
		}
		svc := &tx.Services[svcIdx]
		if svc.Status != domain.ServiceAssigned || svc.EventID == nil {
			return domain.ErrServiceUnavailable
		}
		evIdx, ok := tx.FindEvent(*svc.EventID)
		if !ok {
			return domain.ErrEventNotFound
		}
		ev := tx.Events[evIdx]
		if ev.OrganizerID != organizerID {
			return domain.ErrOwnershipMismatch
		}
		if !ev.IsOver(s.clock.Now()) {
			return domain.ErrEventNotCompleted
		}

		svc.Status = domain.ServiceCompleted
		tx.Touch(repository.Services)
		result = *svc
		return nil
	})
	metrics.TrackOperation("service_complete", err)
	if err != nil {
		return domain.Service{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("service completed", zap.Uint("service_id", serviceID))
	return result, nil
}

// ListCollaborations returns the requests the user sent (organizer) or
// received (vendor).
func (s *CollaborationService) ListCollaborations(ctx context.Context, userID uint) ([]domain.CollaborationRequest, error) {
	var out []domain.CollaborationRequest
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		if _, ok := snap.FindUser(userID); !ok {
			return domain.ErrUserNotFound
		}
		out = []domain.CollaborationRequest{}
		for _, r := range snap.CollaborationRequests {
			if r.OrganizerID == userID || r.VendorID == userID {
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
