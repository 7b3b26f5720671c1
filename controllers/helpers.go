package controllers

import (
	"log"
	"time"

	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/storage"
)

const dateLayout = "2006-01-02"

func todayString() string {
	return time.Now().Format(dateLayout)
}

// removeStoredFile deletes a record's uploaded file before the row goes away.
// A failed delete is not fatal: the path is recorded as an orphan and the
// cleanup job retries it later, so the row delete always proceeds.
func removeStoredFile(db *gorm.DB, disk storage.Disk, path string) {
	if path == "" || !disk.Exists(path) {
		return
	}
	if err := disk.Delete(path); err != nil {
		log.Printf("Failed to delete file %s, recording orphan: %v", path, err)
		if err := db.Create(&models.OrphanFile{Path: path}).Error; err != nil {
			log.Printf("Failed to record orphan file %s: %v", path, err)
		}
	}
}
