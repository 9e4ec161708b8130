package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autoblog/internal/dto"
	"autoblog/internal/model"
	"autoblog/internal/service"
)

type FeedController struct {
	feedService service.FeedService
}

func NewFeedController(feedService service.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

func RegisterFeedRoutes(router *gin.Engine, controller *FeedController) {
	api := router.Group("/api/rss-feeds")
	{
		api.GET("", controller.ListFeeds)
		api.POST("", controller.AddFeed)
	}
}

// ListFeeds godoc
// @Summary      List RSS feeds
// @Tags         rss-feeds
// @Produce      json
// @Success      200  {object}  dto.FeedListResponse
// @Failure      500  {object}  model.Response
// @Router       /api/rss-feeds [get]
func (c *FeedController) ListFeeds(ctx *gin.Context) {
	feeds, err := c.feedService.ListFeeds(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Error retrieving RSS feeds")
		return
	}
	ctx.JSON(http.StatusOK, dto.FeedListResponse{Feeds: feeds})
}

// AddFeed godoc
// @Summary      Add an RSS feed
// @Description  Registers an http or https feed URL.
// @Tags         rss-feeds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FeedRequest  true  "Feed URL"
// @Success      201      {object}  model.Response{data=model.Feed}
// @Failure      400      {object}  model.Response
// @Failure      500      {object}  model.Response
// @Router       /api/rss-feeds [post]
func (c *FeedController) AddFeed(ctx *gin.Context) {
	var req dto.FeedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body: "+err.Error(), nil))
		return
	}

	feed, err := c.feedService.AddFeed(ctx.Request.Context(), req.URL)
	if err != nil {
		respondError(ctx, err, "Error adding RSS feed")
		return
	}
	ctx.JSON(http.StatusCreated, model.NewResponse("RSS feed added successfully", feed))
}
