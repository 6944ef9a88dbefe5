package scheduler

import (
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wempyhq/wempy-ordering/config"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"github.com/wempyhq/wempy-ordering/pkg/receipt"
)

// ReceiptScheduler periodically deletes receipt workbooks older than the
// configured retention window. The order rows themselves are kept.
type ReceiptScheduler struct {
	cron *cron.Cron
	cfg  config.ReceiptConfig
}

func NewReceiptScheduler(cfg config.ReceiptConfig) *ReceiptScheduler {
	return &ReceiptScheduler{
		cron: cron.New(),
		cfg:  cfg,
	}
}

// Start registers the retention sweep on the configured cron expression.
func (s *ReceiptScheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.CleanupSpec, func() {
		s.Sweep()
	})
	if err != nil {
		logger.Error("Failed to schedule receipt retention sweep", err)
		return err
	}

	s.cron.Start()
	logger.Info("Receipt retention sweep scheduled", map[string]interface{}{
		"spec":           s.cfg.CleanupSpec,
		"retention_days": s.cfg.RetentionDays,
	})
	return nil
}

// Stop halts the scheduler.
func (s *ReceiptScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Receipt scheduler stopped")
}

// Sweep removes receipt files older than the retention window.
func (s *ReceiptScheduler) Sweep() {
	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)

	paths, err := filepath.Glob(filepath.Join(s.cfg.Dir, receipt.FileNamePattern))
	if err != nil {
		logger.Error("Failed to scan receipts directory", err, map[string]interface{}{
			"dir": s.cfg.Dir,
		})
		return
	}

	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			logger.Warn("Failed to remove expired receipt", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		removed++
	}

	logger.Info("Receipt retention sweep completed", map[string]interface{}{
		"scanned": len(paths),
		"removed": removed,
	})
}
