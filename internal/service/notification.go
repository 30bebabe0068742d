package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/clock"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// notify appends a notification to the caller's batch.
func notify(tx *repository.Tx, now time.Time, userID uint, title, body string, payload domain.NotificationPayload) uint {
	if payload == nil {
		payload = domain.PlainPayload{}
	}
	id := tx.NextID(repository.Notifications)
	tx.Notifications = append(tx.Notifications, domain.Notification{
		ID:        id,
		UserID:    userID,
		Title:     title,
		Body:      body,
		Payload:   payload,
		CreatedAt: domain.Timestamp{Time: now},
	})
	tx.Touch(repository.Notifications)
	return id
}

type NotificationService struct {
	store Store
	clock clock.Clock
}

func NewNotificationService(store Store, clk clock.Clock) *NotificationService {
	return &NotificationService{
		store: store,
		clock: clk,
	}
}

// Add posts a standalone notification. Core operations emit theirs inside
// their own batch instead.
func (s *NotificationService) Add(ctx context.Context, userID uint, title, body string, payload domain.NotificationPayload) (uint, error) {
	var id uint
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		if _, ok := tx.FindUser(userID); !ok {
			return domain.ErrUserNotFound
		}
		id = notify(tx, s.clock.Now(), userID, title, body, payload)
		return nil
	})
	metrics.TrackOperation("notification_add", err)
	if err != nil {
		return 0, fmt.Errorf("s.store.Update -> %w", err)
	}

	return id, nil
}

// List returns the user's notifications in creation order.
func (s *NotificationService) List(ctx context.Context, userID uint) ([]domain.Notification, error) {
	var out []domain.Notification
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		if _, ok := snap.FindUser(userID); !ok {
			return domain.ErrUserNotFound
		}
		out = []domain.Notification{}
		for _, n := range snap.Notifications {
			if n.UserID == userID {
				out = append(out, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("s.store.View -> %w", err)
	}

	return out, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint) error {
	err := s.store.Update(ctx, func(tx *repository.Tx) error {
		i, ok := tx.FindNotification(notificationID)
		if !ok || tx.Notifications[i].UserID != userID {
			return domain.ErrNotificationNotFound
		}
		if tx.Notifications[i].Read {
			return nil
		}
		tx.Notifications[i].Read = true
		tx.Touch(repository.Notifications)
		return nil
	})
	metrics.TrackOperation("notification_read", err)
	if err != nil {
		return fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Debug("notification read", zap.Uint("user_id", userID), zap.Uint("notification_id", notificationID))
	return nil
}
