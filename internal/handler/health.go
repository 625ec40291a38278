package handler

import (
	"net/http"

	"productstore/internal/dto"

	"github.com/gin-gonic/gin"
)

// Health lets callers know our heart is still beating. The body is fixed:
// liveness only, no dependency probing.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: http.StatusOK, Message: "OK"})
}
