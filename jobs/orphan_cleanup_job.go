package jobs

import (
	"log"
	"time"

	"gorm.io/gorm"

	"pesisir-api/models"
	"pesisir-api/storage"
)

// OrphanCleanupJob periodically retries deletion of files whose removal
// failed during a record delete. Rows are cleared once the file is gone.
type OrphanCleanupJob struct {
	db     *gorm.DB
	disk   storage.Disk
	ticker *time.Ticker
	done   chan bool
}

func NewOrphanCleanupJob(db *gorm.DB, disk storage.Disk, interval time.Duration) *OrphanCleanupJob {
	return &OrphanCleanupJob{
		db:     db,
		disk:   disk,
		ticker: time.NewTicker(interval),
		done:   make(chan bool),
	}
}

func (j *OrphanCleanupJob) Start() {
	log.Println("Orphan file cleanup job started")

	go func() {
		j.cleanup()

		for {
			select {
			case <-j.ticker.C:
				j.cleanup()
			case <-j.done:
				log.Println("Orphan file cleanup job stopped")
				return
			}
		}
	}()
}

func (j *OrphanCleanupJob) Stop() {
	j.ticker.Stop()
	j.done <- true
}

func (j *OrphanCleanupJob) cleanup() {
	var orphans []models.OrphanFile
	if err := j.db.Find(&orphans).Error; err != nil {
		log.Printf("Error loading orphan files: %v", err)
		return
	}

	for _, orphan := range orphans {
		if j.disk.Exists(orphan.Path) {
			if err := j.disk.Delete(orphan.Path); err != nil {
				log.Printf("Orphan file %s still undeletable: %v", orphan.Path, err)
				continue
			}
		}
		if err := j.db.Delete(&orphan).Error; err != nil {
			log.Printf("Error clearing orphan record %d: %v", orphan.ID, err)
		}
	}
}
