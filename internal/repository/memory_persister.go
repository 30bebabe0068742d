package repository

import (
	"context"
	"sync"
)

// MemoryPersister keeps committed state in process. It backs the memory
// store driver and tests; FailWith makes the next commits fail.
type MemoryPersister struct {
	mu      sync.Mutex
	state   *Snapshot
	fail    error
	commits int
}

func NewMemoryPersister(seed *Snapshot) *MemoryPersister {
	if seed == nil {
		seed = NewSnapshot()
	}
	return &MemoryPersister{state: seed.Clone()}
}

func (p *MemoryPersister) Load(ctx context.Context, strict bool) (*Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Clone(), nil
}

func (p *MemoryPersister) Persist(ctx context.Context, s *Snapshot, touched []Collection) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fail != nil {
		return p.fail
	}
	p.state = s.Clone()
	p.commits++
	return nil
}

// FailWith makes every later Persist return err until it is called with nil.
func (p *MemoryPersister) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fail = err
}

func (p *MemoryPersister) Commits() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.commits
}
