package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler reports service liveness and database reachability
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check handles the GET /health endpoint
func (h *HealthHandler) Check(c *gin.Context) {
	status := "ok"
	dbStatus := "up"
	code := http.StatusOK

	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		status = "degraded"
		dbStatus = "down"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}
