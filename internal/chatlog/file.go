package chatlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"voice-assistant/internal/model"
	pkgLog "voice-assistant/pkg/log"
)

type fileRepository struct {
	path string
	l    pkgLog.Logger
	mu   sync.Mutex
}

// Ensure fileRepository implements Repository interface
var _ Repository = (*fileRepository)(nil)

// NewFileRepository stores the log as a JSON array of {role, content} objects at path.
func NewFileRepository(path string, l pkgLog.Logger) (Repository, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("create chat log dir: %w", err)
	}
	return &fileRepository{path: path, l: l}, nil
}

func (r *fileRepository) Load(ctx context.Context) ([]model.ChatEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read(ctx)
}

func (r *fileRepository) Recent(ctx context.Context, n int) ([]model.ChatEntry, error) {
	entries, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 && len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}

func (r *fileRepository) Append(ctx context.Context, entries ...model.ChatEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.Transact(ctx, func(cur []model.ChatEntry) ([]model.ChatEntry, error) {
		return append(cur, entries...), nil
	})
}

func (r *fileRepository) Transact(ctx context.Context, fn func(entries []model.ChatEntry) ([]model.ChatEntry, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.read(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixTransact, err)
		return err
	}
	next, err := fn(cur)
	if err != nil {
		return err
	}
	if err := r.write(next); err != nil {
		r.l.Errorf(ctx, "%s: %v", LogPrefixTransact, err)
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func (r *fileRepository) Seed(ctx context.Context, assistantName, username string) error {
	return r.Transact(ctx, func(cur []model.ChatEntry) ([]model.ChatEntry, error) {
		if len(cur) > 0 {
			return cur, nil
		}
		return []model.ChatEntry{
			{Role: model.RoleUser, Content: fmt.Sprintf(seedUserTemplate, assistantName)},
			{Role: model.RoleAssistant, Content: fmt.Sprintf(seedAssistantTemplate, username)},
		}, nil
	})
}

// read must be called with mu held. A file that is not a valid log is moved aside
// so the next write cannot overwrite it.
func (r *fileRepository) read(ctx context.Context) ([]model.ChatEntry, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.ChatEntry{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	var entries []model.ChatEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		aside := fmt.Sprintf("%s%s%d", r.path, corruptSuffix, time.Now().UnixNano())
		if rerr := os.Rename(r.path, aside); rerr != nil {
			return nil, fmt.Errorf("%w: quarantine %s: %w", ErrRead, r.path, rerr)
		}
		r.l.Warnf(ctx, "%s: %s is not a valid log, moved to %s: %v", LogPrefixLoad, r.path, aside, err)
		return []model.ChatEntry{}, nil
	}
	return entries, nil
}

// write replaces the file atomically through a temp file in the same directory.
func (r *fileRepository) write(entries []model.ChatEntry) error {
	if entries == nil {
		entries = []model.ChatEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".chatlog-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, r.path)
}
