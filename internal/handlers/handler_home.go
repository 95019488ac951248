package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// GetHome godoc
// @Summary Service banner
// @Description Returns the service name, useful as a liveness probe target.
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func GetHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "assembly-backend"})
}
