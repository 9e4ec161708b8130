package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoblog/internal/dto"
	"autoblog/internal/model"
	"autoblog/internal/service"
)

type LLMConfigController struct {
	llmConfigService service.LLMConfigService
}

func NewLLMConfigController(llmConfigService service.LLMConfigService) *LLMConfigController {
	return &LLMConfigController{llmConfigService: llmConfigService}
}

func RegisterLLMConfigRoutes(router *gin.Engine, controller *LLMConfigController) {
	api := router.Group("/api/llm-config")
	{
		api.GET("", controller.ListConfigs)
		api.POST("", controller.AddConfig)
	}
}

// ListConfigs godoc
// @Summary      List LLM configurations
// @Tags         llm-config
// @Produce      json
// @Success      200  {object}  dto.LLMConfigListResponse
// @Failure      500  {object}  model.Response
// @Router       /api/llm-config [get]
func (c *LLMConfigController) ListConfigs(ctx *gin.Context) {
	configs, err := c.llmConfigService.ListConfigs(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Error retrieving LLM configurations")
		return
	}
	ctx.JSON(http.StatusOK, dto.LLMConfigListResponse{Configs: configs})
}

// AddConfig godoc
// @Summary      Add an LLM configuration
// @Tags         llm-config
// @Accept       json
// @Produce      json
// @Param        request  body      dto.LLMConfigRequest  true  "Name and type (local or api)"
// @Success      201      {object}  model.Response{data=model.LLMConfig}
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /api/llm-config [post]
func (c *LLMConfigController) AddConfig(ctx *gin.Context) {
	var req dto.LLMConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	cfg, err := c.llmConfigService.AddConfig(ctx.Request.Context(), req.Name, req.Type)
	if err != nil {
		respondError(ctx, err, "Error adding LLM configuration")
		return
	}
	ctx.JSON(http.StatusCreated, model.NewResponse("LLM configuration added successfully", cfg))
}
