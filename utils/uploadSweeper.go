package utils

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"elearn/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Files younger than this are never swept, so an upload can sit between the
// upload-pdf call and the lesson save that references it.
const sweepGracePeriod = 24 * time.Hour

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[UPLOAD-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartUploadSweeper schedules an hourly job that removes uploaded PDFs no
// lesson references anymore. The caller owns the returned cron and should
// Stop it on shutdown.
func StartUploadSweeper(db *gorm.DB, uploadDir string) *cron.Cron {
	c := cron.New()
	c.AddFunc("@hourly", func() {
		SweepOrphanedUploads(db, uploadDir)
	})
	c.Start()
	logSweeper("Upload sweeper started for " + uploadDir)
	return c
}

// SweepOrphanedUploads deletes files in uploadDir older than the grace period
// that no lesson's pdfUrl points at. Best effort: individual failures are
// logged and skipped.
func SweepOrphanedUploads(db *gorm.DB, uploadDir string) {
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logSweeper("Error reading upload dir: " + err.Error())
		}
		return
	}

	cutoff := time.Now().Add(-sweepGracePeriod)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		var count int64
		if err := db.Model(&models.Lesson{}).
			Where("pdf_url = ?", GetFileURL(entry.Name())).
			Count(&count).Error; err != nil {
			logSweeper("Error checking lesson references: " + err.Error())
			continue
		}
		if count > 0 {
			continue
		}

		if err := os.Remove(filepath.Join(uploadDir, entry.Name())); err != nil {
			logSweeper("Error removing " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	if removed > 0 {
		logSweeper("Removed " + strconv.Itoa(removed) + " orphaned uploads")
	}
}
