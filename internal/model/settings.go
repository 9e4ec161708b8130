package model

import (
	"errors"
	"fmt"
	"time"
)

// LLMType selects where blog text would be generated.
type LLMType string

const (
	LLMTypeLocal LLMType = "local"
	LLMTypeAPI   LLMType = "api"
)

var ErrInvalidLLMType = errors.New("llm type must be one of: local, api")

// LLMTypes lists the accepted values in display order.
var LLMTypes = []LLMType{LLMTypeLocal, LLMTypeAPI}

func ParseLLMType(s string) (LLMType, error) {
	for _, t := range LLMTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidLLMType, s)
}

func (t LLMType) Valid() bool {
	_, err := ParseLLMType(string(t))
	return err == nil
}

// SettingsDraft is the editable part of the settings record. ProxyURL is free
// text; empty means no proxy.
type SettingsDraft struct {
	LLMType  LLMType `json:"llmType"`
	ProxyURL string  `json:"proxyUrl"`
}

func DefaultSettingsDraft() SettingsDraft {
	return SettingsDraft{LLMType: LLMTypeLocal}
}

func (d SettingsDraft) Validate() error {
	if !d.LLMType.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidLLMType, d.LLMType)
	}
	return nil
}

// Settings is the persisted singleton row.
type Settings struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	LLMType   LLMType   `json:"llmType" gorm:"size:16;not null"`
	ProxyURL  string    `json:"proxyUrl" gorm:"size:2048"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsID is the primary key of the only settings row.
const SettingsID = 1

func (s Settings) Draft() SettingsDraft {
	return SettingsDraft{LLMType: s.LLMType, ProxyURL: s.ProxyURL}
}
