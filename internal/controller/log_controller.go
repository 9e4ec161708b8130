package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"autoblog/internal/dto"
	"autoblog/internal/model"
	"autoblog/internal/service"
)

type LogController struct {
	logQueryService service.LogQueryService
}

func NewLogController(logQueryService service.LogQueryService) *LogController {
	return &LogController{
		logQueryService: logQueryService,
	}
}

func RegisterLogRoutes(router *gin.Engine, controller *LogController) {
	api := router.Group("/api/logs")
	{
		api.GET("", controller.GetLogs)
	}
}

// GetLogs godoc
// @Summary      Tail the application log
// @Description  Returns the most recent lines of the application log, oldest first. Non-numeric or non-positive values fall back to the default.
// @Tags         logs
// @Produce      json
// @Param        lines  query     int  false  "Number of lines (default: 100, max: 10000)"
// @Success      200    {object}  dto.LogTailResponse "Log lines, oldest first"
// @Failure      500    {object}  model.Response "Error retrieving logs"
// @Router       /api/logs [get]
func (c *LogController) GetLogs(ctx *gin.Context) {
	lines, err := strconv.Atoi(ctx.DefaultQuery("lines", strconv.Itoa(dto.DefaultLogLines)))
	if err != nil || lines <= 0 {
		lines = dto.DefaultLogLines
	}

	result, err := c.logQueryService.TailLogs(ctx.Request.Context(), dto.LogTailRequest{Lines: lines})
	if err != nil {
		log.Error().Err(err).Int("lines", lines).Msg("Error retrieving logs")
		ctx.JSON(http.StatusInternalServerError, model.NewResponse("Error retrieving logs", nil))
		return
	}

	ctx.JSON(http.StatusOK, result)
}
