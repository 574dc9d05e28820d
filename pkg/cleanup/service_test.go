package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSessionFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"note"}`+"\n"), 0o644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestRunOnceRemovesOnlyExpiredSessionFiles(t *testing.T) {
	dir := t.TempDir()
	old := writeSessionFile(t, dir, "inv-old.ndjson", 48*time.Hour)
	fresh := writeSessionFile(t, dir, "inv-fresh.ndjson", time.Hour)
	other := writeSessionFile(t, dir, "notes.txt", 48*time.Hour)

	svc := NewService(Options{ScratchpadDir: dir, Retention: 24 * time.Hour}, nil, nil)
	svc.RunOnce(context.Background())

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.FileExists(t, other, "non-session files are left alone")
}

func TestRunOnceToleratesMissingDir(t *testing.T) {
	svc := NewService(Options{
		ScratchpadDir: filepath.Join(t.TempDir(), "does-not-exist"),
		Retention:     time.Hour,
	}, nil, nil)

	// Must not panic or create the directory.
	svc.RunOnce(context.Background())
}

func TestStartStopIsIdempotent(t *testing.T) {
	svc := NewService(Options{
		ScratchpadDir: t.TempDir(),
		Retention:     time.Hour,
		Interval:      time.Minute,
	}, nil, nil)

	ctx := context.Background()
	svc.Start(ctx)
	svc.Start(ctx) // second call is a no-op
	svc.Stop()
	svc.Stop()
}
