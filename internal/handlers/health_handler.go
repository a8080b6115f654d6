package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowjay/countdown-token-service/internal/dto"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
