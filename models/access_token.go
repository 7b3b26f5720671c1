package models

import (
	"time"
)

// AccessToken is one issued bearer token. The JWT carries the TokenID as its
// jti claim; deleting the row revokes the token.
type AccessToken struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	TokenID    string     `json:"token_id" gorm:"uniqueIndex;not null;size:191"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Name       string     `json:"name" gorm:"not null;size:255"`
	LastUsedAt *time.Time `json:"last_used_at"`
	CreatedAt  time.Time  `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
