package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wempyhq/wempy-ordering/config"
)

func writeReceiptFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, stamp, stamp))
	return path
}

func TestReceiptScheduler_Sweep(t *testing.T) {
	dir := t.TempDir()

	expired := writeReceiptFile(t, dir, "wempy_order_1.xlsx", 100*24*time.Hour)
	fresh := writeReceiptFile(t, dir, "wempy_order_2.xlsx", 24*time.Hour)
	unrelated := writeReceiptFile(t, dir, "notes.txt", 100*24*time.Hour)

	s := NewReceiptScheduler(config.ReceiptConfig{
		Dir:           dir,
		RetentionDays: 90,
		CleanupSpec:   "0 4 * * *",
	})
	s.Sweep()

	assert.NoFileExists(t, expired)
	assert.FileExists(t, fresh)
	assert.FileExists(t, unrelated)
}

func TestReceiptScheduler_StartRejectsBadSpec(t *testing.T) {
	s := NewReceiptScheduler(config.ReceiptConfig{
		Dir:         t.TempDir(),
		CleanupSpec: "not a cron spec",
	})
	assert.Error(t, s.Start())
}
