package dto

type SettingsRequest struct {
	LLMType  string `json:"llmType" binding:"required"`
	ProxyURL string `json:"proxyUrl"`
}

// ProxyConfigRequest must carry url; an explicit empty string clears the proxy.
type ProxyConfigRequest struct {
	URL *string `json:"url" binding:"required"`
}
