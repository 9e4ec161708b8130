package model

import (
	"errors"
	"time"
)

var ErrInvalidFeedURL = errors.New("feed url must be an absolute http or https url")

type Feed struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
