package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoblog/internal/dto"
	"autoblog/internal/model"
	"autoblog/internal/service"
)

type AutomationController struct {
	automationService service.AutomationService
}

func NewAutomationController(automationService service.AutomationService) *AutomationController {
	return &AutomationController{automationService: automationService}
}

func RegisterAutomationRoutes(router *gin.Engine, controller *AutomationController) {
	api := router.Group("/api/automations")
	{
		api.GET("", controller.ListAutomations)
		api.POST("", controller.AddAutomation)
	}
}

// ListAutomations godoc
// @Summary      List automations
// @Tags         automations
// @Produce      json
// @Success      200  {object}  dto.AutomationListResponse
// @Failure      500  {object}  model.Response
// @Router       /api/automations [get]
func (c *AutomationController) ListAutomations(ctx *gin.Context) {
	automations, err := c.automationService.ListAutomations(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Error retrieving automations")
		return
	}
	ctx.JSON(http.StatusOK, dto.AutomationListResponse{Automations: automations})
}

// AddAutomation godoc
// @Summary      Add an automation
// @Description  Stores a named five-field cron schedule or descriptor such as @daily.
// @Tags         automations
// @Accept       json
// @Produce      json
// @Param        request  body      dto.AutomationRequest  true  "Name and cron schedule"
// @Success      201      {object}  model.Response{data=model.Automation}
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /api/automations [post]
func (c *AutomationController) AddAutomation(ctx *gin.Context) {
	var req dto.AutomationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	automation, err := c.automationService.AddAutomation(ctx.Request.Context(), req.Name, req.Schedule)
	if err != nil {
		respondError(ctx, err, "Error adding automation")
		return
	}
	ctx.JSON(http.StatusCreated, model.NewResponse("Automation added successfully", automation))
}
