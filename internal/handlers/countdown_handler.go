package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/rowjay/countdown-token-service/internal/dto"
	serviceErrors "github.com/rowjay/countdown-token-service/internal/errors"
	"github.com/rowjay/countdown-token-service/internal/services"
)

type CountdownHandler struct {
	service services.CountdownService
}

func NewCountdownHandler(service services.CountdownService) *CountdownHandler {
	return &CountdownHandler{service: service}
}

// RegisterRoutes mounts the countdown API on r.
func (h *CountdownHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api/v1/countdowns")
	api.POST("", h.CreateCountdown)
	api.GET("/:token", h.GetCountdown)
}

func (h *CountdownHandler) CreateCountdown(c *gin.Context) {
	var req dto.CreateCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Invalid request payload")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request payload",
			Message: err.Error(),
			Kind:    serviceErrors.ErrorCodeValidation.String(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	resp, err := h.service.CreateCountdown(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	log.Info().Str("token", resp.Token).Int64("timestamp", resp.Timestamp).Msg("Countdown link created")
	c.JSON(http.StatusCreated, resp)
}

func (h *CountdownHandler) GetCountdown(c *gin.Context) {
	token := c.Param("token")

	resp, err := h.service.GetCountdown(c.Request.Context(), token)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *CountdownHandler) handleServiceError(c *gin.Context, err error) {
	var serviceErr *serviceErrors.ServiceError
	if errors.As(err, &serviceErr) {
		var statusCode int
		switch serviceErr.Code {
		case serviceErrors.ErrorCodeInvalidInput,
			serviceErrors.ErrorCodeOutOfRange,
			serviceErrors.ErrorCodeEncodingTooLong,
			serviceErrors.ErrorCodeInvalidEncoding,
			serviceErrors.ErrorCodeInvalidToken,
			serviceErrors.ErrorCodeValidation:
			statusCode = http.StatusBadRequest
		default:
			statusCode = http.StatusInternalServerError
		}

		if statusCode >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", statusCode).Msg("Service error")
		} else {
			log.Warn().Err(err).Str("kind", serviceErr.Code.String()).Int("status", statusCode).Msg("Request rejected")
		}
		c.JSON(statusCode, dto.ErrorResponse{
			Error:   serviceErr.Message,
			Message: serviceErr.Error(),
			Kind:    serviceErr.Code.String(),
			Code:    statusCode,
		})
		return
	}

	internalErr := serviceErrors.NewInternalError("handler.handleServiceError", "Internal server error", err)
	log.Error().Err(internalErr).Msg("Unknown error")
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   internalErr.Message,
		Message: "An unexpected error occurred",
		Kind:    internalErr.Code.String(),
		Code:    http.StatusInternalServerError,
	})
}
