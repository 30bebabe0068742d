package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/metrics"
)

// Persister writes and reads collections on durable storage.
type Persister interface {
	// Load reads every collection. With strict unset a collection that
	// fails to parse is replaced by an empty one.
	Load(ctx context.Context, strict bool) (*Snapshot, error)
	// Persist writes the listed collections of s, all or nothing.
	Persist(ctx context.Context, s *Snapshot, touched []Collection) error
}

// Store is the process-local view over all collections. Update calls are
// serialized; View calls may run concurrently with each other.
type Store struct {
	mu    sync.RWMutex
	state *Snapshot
	p     Persister
}

// Open performs the cold-start load. Collections that fail to parse load
// as empty, and duplicate keys are only logged.
func Open(ctx context.Context, p Persister) (*Store, error) {
	return open(ctx, p, false)
}

// OpenStrict fails on any collection that does not parse or that holds a
// duplicate key.
func OpenStrict(ctx context.Context, p Persister) (*Store, error) {
	return open(ctx, p, true)
}

func open(ctx context.Context, p Persister, strict bool) (*Store, error) {
	state, err := p.Load(ctx, strict)
	if err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("p.Load -> %w", err))
	}
	if err := state.reconcileKeys(strict); err != nil {
		return nil, domain.StorageFailure(fmt.Errorf("state.reconcileKeys -> %w", err))
	}
	return &Store{state: state, p: p}, nil
}

// View runs fn against the committed state. fn must not mutate it.
func (s *Store) View(ctx context.Context, fn func(*Snapshot) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// Update runs fn against a private copy of the state and commits the
// collections fn touched. If fn fails, or the persister fails, the
// committed state is left exactly as it was.
func (s *Store) Update(ctx context.Context, fn func(*Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := newTx(s.state.Clone())
	if err := fn(tx); err != nil {
		return err
	}

	touched := tx.Touched()
	if len(touched) == 0 {
		return nil
	}

	start := time.Now()
	err := s.p.Persist(ctx, tx.Snapshot, touched)
	metrics.TrackCommit(time.Since(start), err)
	if err != nil {
		zap.L().Error("store commit failed", zap.Any("collections", touched), zap.Error(err))
		return domain.StorageFailure(fmt.Errorf("s.p.Persist -> %w", err))
	}

	s.state = tx.Snapshot
	return nil
}

// Reload replaces the in-memory state with what is on storage. Unlike the
// cold start, a collection that fails to parse is a hard failure.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.p.Load(ctx, true)
	if err != nil {
		return domain.StorageFailure(fmt.Errorf("s.p.Load -> %w", err))
	}
	if err := state.reconcileKeys(true); err != nil {
		return domain.StorageFailure(fmt.Errorf("state.reconcileKeys -> %w", err))
	}
	s.state = state
	return nil
}
