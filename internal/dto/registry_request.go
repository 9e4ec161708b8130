package dto

import "autoblog/internal/model"

type FeedRequest struct {
	URL string `json:"url" binding:"required"`
}

type FeedListResponse struct {
	Feeds []model.Feed `json:"feeds"`
}

type LLMConfigRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

type LLMConfigListResponse struct {
	Configs []model.LLMConfig `json:"configs"`
}

type AutomationRequest struct {
	Name     string `json:"name" binding:"required"`
	Schedule string `json:"schedule" binding:"required"`
}

type AutomationListResponse struct {
	Automations []model.Automation `json:"automations"`
}
