package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"autoblog/internal/dto"
	"autoblog/internal/model"
	"autoblog/internal/service"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

func RegisterSettingsRoutes(router *gin.Engine, controller *SettingsController) {
	api := router.Group("/api")
	{
		api.GET("/settings", controller.GetSettings)
		api.PUT("/settings", controller.UpdateSettings)
		api.POST("/proxy-config", controller.UpdateProxyConfig)
	}
}

// GetSettings godoc
// @Summary      Get settings
// @Description  Returns the saved settings, or the configured defaults if nothing was saved yet.
// @Tags         settings
// @Produce      json
// @Success      200  {object}  model.Settings
// @Failure      500  {object}  model.Response
// @Router       /api/settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.Get(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error loading settings")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Error retrieving settings", nil))
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary      Save settings
// @Description  Replaces the LLM mode and proxy URL. The proxy URL is stored as typed.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SettingsRequest  true  "LLM mode (local or api) and proxy URL"
// @Success      200      {object}  model.Settings
// @Failure      400      {object}  model.Response "Invalid request body or llmType"
// @Failure      500      {object}  model.Response
// @Router       /api/settings [put]
func (c *SettingsController) UpdateSettings(ctx *gin.Context) {
	var req dto.SettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid settings request body")
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	settings, err := c.settingsService.Update(ctx.Request.Context(), model.SettingsDraft{
		LLMType:  model.LLMType(req.LLMType),
		ProxyURL: req.ProxyURL,
	})
	if err != nil {
		respondError(ctx, err, "Error saving settings")
		return
	}
	ctx.JSON(http.StatusOK, settings)
}

// UpdateProxyConfig godoc
// @Summary      Set the proxy URL
// @Description  Updates only the proxy URL. An empty url clears it.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ProxyConfigRequest  true  "Proxy URL"
// @Success      200      {object}  model.Response
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /api/proxy-config [post]
func (c *SettingsController) UpdateProxyConfig(ctx *gin.Context) {
	var req dto.ProxyConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	if _, err := c.settingsService.SetProxyURL(ctx.Request.Context(), *req.URL); err != nil {
		log.Error().Err(err).Msg("Error updating proxy configuration")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Error updating proxy configuration", nil))
		return
	}
	ctx.JSON(http.StatusOK, model.NewResponse("Proxy configuration updated successfully", nil))
}
