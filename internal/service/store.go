package service

import (
	"context"

	"github.com/vietanh2810/eventhub/internal/repository"
)

// Store is the transactional view every service works against.
type Store interface {
	View(ctx context.Context, fn func(*repository.Snapshot) error) error
	Update(ctx context.Context, fn func(*repository.Tx) error) error
}
