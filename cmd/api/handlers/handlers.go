package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/cmd/api/dto"
	"portfolio-api/cmd/api/services"
	"portfolio-api/cmd/api/trace"
	"portfolio-api/cmd/internal/logger"
	"portfolio-api/storage"
)

// Action is the closed set of things the portfolio endpoint can do.
type Action int

const (
	ActionItems Action = iota
	ActionImages
)

// ParseAction maps the raw query value onto an Action. Missing and
// unrecognized values fall back to ActionItems; that default is part of the
// public contract (기존 배포가 그렇게 동작했고 클라이언트가 의존한다),
// not an accident.
func ParseAction(raw string) Action {
	if raw == "images" {
		return ActionImages
	}
	return ActionItems
}

// PortfolioHandler godoc
// @Summary      Portfolio collection
// @Description  Returns portfolio items (default) or base64-encoded gallery images, depending on the action parameter. Errors are reported inside the body with HTTP status 200; callers must check the error field.
// @Tags         portfolio
// @Param        action  query  string  false  "items (default) or images"
// @Produce      json
// @Success      200  {array}   dto.PortfolioItemDTO
// @Failure      200  {object}  dto.ErrorEnvelopeDTO
// @Router       /portfolio [get]
func PortfolioHandler(items *services.PortfolioService, gallery *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var (
			result any
			err    error
		)
		switch ParseAction(c.Query("action")) {
		case ActionImages:
			result, err = gallery.List(ctx)
		default:
			result, err = items.List(ctx)
		}

		if err != nil {
			logger.ErrorWithFields("portfolio request failed", logger.Fields{
				"action":     c.Query("action"),
				"request_id": trace.RequestIDFromContext(ctx),
				"error":      err.Error(),
			})
			// 전송 레벨 상태는 200 으로 고정한다. 실패 여부는 바디의 error
			// 필드로만 판별할 수 있다. (기존 클라이언트와의 계약)
			c.JSON(http.StatusOK, dto.ErrorEnvelopeDTO{
				Error:      true,
				Message:    err.Error(),
				StatusCode: http.StatusInternalServerError,
			})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Verifies the object store backing the API is reachable.
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Failure      503  {object}  dto.ErrorEnvelopeDTO
// @Router       /health [get]
func HealthHandler(store storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.ErrorEnvelopeDTO{
				Error:      true,
				Message:    err.Error(),
				StatusCode: http.StatusServiceUnavailable,
			})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok"})
	}
}
