package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"autoblog/internal/model"
)

var validationErrors = []error{
	model.ErrInvalidLLMType,
	model.ErrInvalidFeedURL,
	model.ErrInvalidSchedule,
	model.ErrInvalidName,
}

// respondError answers 400 with the error text for validation failures and
// 500 with internalMsg for everything else.
func respondError(ctx *gin.Context, err error, internalMsg string) {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			ctx.JSON(http.StatusBadRequest, model.NewResponse(err.Error(), nil))
			return
		}
	}
	log.Error().Err(err).Str("path", ctx.FullPath()).Msg(internalMsg)
	ctx.JSON(http.StatusInternalServerError, model.NewResponse(internalMsg, nil))
}
