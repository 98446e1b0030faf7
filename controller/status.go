package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventsnap/database"
	"eventsnap/models"
)

type StatusController struct {
	status database.StatusRepository
}

func NewStatusController(status database.StatusRepository) *StatusController {
	return &StatusController{status: status}
}

// Root handles GET /api/.
func (sc *StatusController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Event Snap Stream API", "status": "running"})
}

// Create handles POST /api/status.
func (sc *StatusController) Create(c *gin.Context) {
	var input models.StatusCheckCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	check, err := sc.status.Create(c.Request.Context(), input.ClientName)
	if err != nil {
		slog.Error("failed to store status check", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, check)
}

// List handles GET /api/status.
func (sc *StatusController) List(c *gin.Context) {
	checks, err := sc.status.FindAll(c.Request.Context())
	if err != nil {
		slog.Error("failed to list status checks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if checks == nil {
		checks = []models.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
