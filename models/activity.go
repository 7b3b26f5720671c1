package models

import (
	"time"
)

// Activity status lifecycle, derived from activity_date and never accepted
// from the caller.
const (
	ActivityStatusDone     = "done"
	ActivityStatusOngoing  = "ongoing"
	ActivityStatusUpcoming = "upcoming"
)

type Activity struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ActivityName   string    `json:"activity_name" gorm:"uniqueIndex;not null;size:255"`
	ActivityDesc   string    `json:"activity_desc" gorm:"type:text"`
	ActivityDate   string    `json:"activity_date" gorm:"not null;size:10"`
	ActivityTime   string    `json:"activity_time" gorm:"size:5"`
	ActivityStatus string    `json:"activity_status" gorm:"not null;size:20"`
	ActivityFee    int       `json:"activity_fee" gorm:"not null"`
	ImagePath      string    `json:"image_path" gorm:"size:500"`
	LocationID     uint      `json:"location_id" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Location   *Location   `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Volunteers []Volunteer `json:"volunteers,omitempty" gorm:"foreignKey:ActivityID"`
}

// DeriveActivityStatus computes the lifecycle label from the activity date.
// Both arguments are YYYY-MM-DD strings, so lexicographic order is calendar
// order; the comparison has no time-of-day component.
func DeriveActivityStatus(activityDate, today string) string {
	switch {
	case activityDate < today:
		return ActivityStatusDone
	case activityDate == today:
		return ActivityStatusOngoing
	default:
		return ActivityStatusUpcoming
	}
}
