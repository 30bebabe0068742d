package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FilePersister keeps one JSON document per collection under Dir.
type FilePersister struct {
	fs  afero.Fs
	dir string
}

func NewFilePersister(fs afero.Fs, dir string) *FilePersister {
	return &FilePersister{
		fs:  fs,
		dir: dir,
	}
}

func (p *FilePersister) path(c Collection) string {
	return filepath.Join(p.dir, string(c)+".json")
}

func (p *FilePersister) Load(ctx context.Context, strict bool) (*Snapshot, error) {
	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return nil, fmt.Errorf("p.fs.MkdirAll -> %w", err)
	}

	snap := NewSnapshot()
	for _, c := range AllCollections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.loadCollection(snap, c); err != nil {
			if strict {
				return nil, fmt.Errorf("load %s -> %w", c, err)
			}
			zap.L().Warn("collection unreadable, starting empty",
				zap.String("collection", string(c)),
				zap.Error(err),
			)
		}
	}

	return snap, nil
}

func (p *FilePersister) loadCollection(snap *Snapshot, c Collection) error {
	data, err := afero.ReadFile(p.fs, p.path(c))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	staged := NewSnapshot()
	target := staged.collection(c)
	if err := json.Unmarshal(data, target); err != nil {
		return err
	}

	// A literal null leaves the slice nil.
	switch c {
	case Users:
		snap.Users = append(snap.Users[:0], staged.Users...)
	case Events:
		snap.Events = append(snap.Events[:0], staged.Events...)
	case Services:
		snap.Services = append(snap.Services[:0], staged.Services...)
	case Tickets:
		snap.Tickets = append(snap.Tickets[:0], staged.Tickets...)
	case CollaborationRequests:
		snap.CollaborationRequests = append(snap.CollaborationRequests[:0], staged.CollaborationRequests...)
	case TransferRequests:
		snap.TransferRequests = append(snap.TransferRequests[:0], staged.TransferRequests...)
	case Reviews:
		snap.Reviews = append(snap.Reviews[:0], staged.Reviews...)
	case Notifications:
		snap.Notifications = append(snap.Notifications[:0], staged.Notifications...)
	}
	return nil
}

// Persist writes every touched collection to a sibling temp file first and
// only renames once all of them are on disk. Each file being replaced is
// kept as a .bak until every rename succeeded, so a failed rename restores
// the previous files.
func (p *FilePersister) Persist(ctx context.Context, s *Snapshot, touched []Collection) error {
	if err := p.fs.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("p.fs.MkdirAll -> %w", err)
	}

	var written []string
	cleanup := func() {
		for _, tmp := range written {
			_ = p.fs.Remove(tmp)
		}
	}

	for _, c := range touched {
		if err := ctx.Err(); err != nil {
			cleanup()
			return err
		}

		data, err := json.MarshalIndent(s.collection(c), "", "  ")
		if err != nil {
			cleanup()
			return fmt.Errorf("encode %s -> %w", c, err)
		}

		tmp := p.path(c) + ".tmp"
		written = append(written, tmp)
		if err := p.writeSynced(tmp, data); err != nil {
			cleanup()
			return fmt.Errorf("write %s -> %w", c, err)
		}
	}

	var swaps []fileSwap
	for i, c := range touched {
		sw := fileSwap{target: p.path(c), backup: p.path(c) + ".bak"}
		swaps = append(swaps, sw)

		err := p.swapIn(&swaps[len(swaps)-1], written[i])
		if err != nil {
			p.rollback(swaps)
			cleanup()
			return fmt.Errorf("rename %s -> %w", c, err)
		}
	}

	for _, sw := range swaps {
		if sw.backedUp {
			_ = p.fs.Remove(sw.backup)
		}
	}
	return nil
}

type fileSwap struct {
	target    string
	backup    string
	backedUp  bool
	installed bool
}

func (p *FilePersister) swapIn(sw *fileSwap, tmp string) error {
	exists, err := afero.Exists(p.fs, sw.target)
	if err != nil {
		return err
	}
	if exists {
		if err := p.fs.Rename(sw.target, sw.backup); err != nil {
			return err
		}
		sw.backedUp = true
	}
	if err := p.fs.Rename(tmp, sw.target); err != nil {
		return err
	}
	sw.installed = true
	return nil
}

// rollback puts back the files that were in place before Persist, newest
// swap first.
func (p *FilePersister) rollback(swaps []fileSwap) {
	for i := len(swaps) - 1; i >= 0; i-- {
		sw := swaps[i]
		if sw.installed {
			_ = p.fs.Remove(sw.target)
		}
		if sw.backedUp {
			if err := p.fs.Rename(sw.backup, sw.target); err != nil {
				zap.L().Error("restore after failed commit",
					zap.String("file", sw.target),
					zap.Error(err),
				)
			}
		}
	}
}

func (p *FilePersister) writeSynced(name string, data []byte) error {
	f, err := p.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
