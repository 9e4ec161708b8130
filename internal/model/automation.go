package model

import (
	"errors"
	"time"
)

var ErrInvalidSchedule = errors.New("schedule must be a valid cron expression")

// Automation is a named schedule. Nothing executes it yet.
type Automation struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Schedule  string    `json:"schedule" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
