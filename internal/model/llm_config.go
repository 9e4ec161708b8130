package model

import (
	"errors"
	"time"
)

var ErrInvalidName = errors.New("name is required")

type LLMConfig struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Type      LLMType   `json:"type" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"createdAt"`
}
