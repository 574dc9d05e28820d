// Package cleanup enforces retention: old scratchpad session files are
// removed from disk, and when persistence is enabled old session rows are
// deleted from the database.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rootline-ai/rootline/pkg/services"
)

// Options configures the retention loop.
type Options struct {
	// ScratchpadDir holds the per-run NDJSON session files.
	ScratchpadDir string

	// Retention is how long finished artifacts are kept.
	Retention time.Duration

	// Interval is how often the loop runs. Zero means one hour.
	Interval time.Duration
}

// Service runs the retention loop. All operations are idempotent.
type Service struct {
	opts     Options
	sessions *services.SessionService // nil when persistence is disabled
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a cleanup service. A nil sessions service skips
// database retention.
func NewService(opts Options, sessions *services.SessionService, logger *slog.Logger) *Service {
	if opts.Interval <= 0 {
		opts.Interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		opts:     opts,
		sessions: sessions,
		logger:   logger.With("component", "cleanup"),
	}
}

// Start launches the background retention loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("cleanup service started",
		"retention", s.opts.Retention,
		"interval", s.opts.Interval)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single retention pass.
func (s *Service) RunOnce(ctx context.Context) {
	cutoff := time.Now().Add(-s.opts.Retention)
	s.pruneScratchpadFiles(cutoff)
	s.pruneSessions(ctx, cutoff)
}

// pruneScratchpadFiles removes NDJSON session files older than the cutoff,
// judged by modification time so files still being appended to survive.
func (s *Service) pruneScratchpadFiles(cutoff time.Time) {
	if s.opts.ScratchpadDir == "" {
		return
	}
	entries, err := os.ReadDir(s.opts.ScratchpadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("retention: read scratchpad dir failed", "error", err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".ndjson") {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.opts.ScratchpadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Error("retention: remove session file failed", "path", path, "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		s.logger.Info("retention: removed old session files", "count", removed)
	}
}

func (s *Service) pruneSessions(ctx context.Context, cutoff time.Time) {
	if s.sessions == nil {
		return
	}
	count, err := s.sessions.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("retention: delete old sessions failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("retention: deleted old sessions", "count", count)
	}
}
