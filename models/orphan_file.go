package models

import (
	"time"
)

// OrphanFile records a stored file whose delete failed while its owning row
// was being removed. The cleanup job retries these until the file is gone.
type OrphanFile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Path      string    `json:"path" gorm:"not null;size:500"`
	CreatedAt time.Time `json:"created_at"`
}
