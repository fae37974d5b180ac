package handlers

import (
	"log"
	"net/http"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/models"
	"github.com/fintrack/fintrack-api/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Service *services.DashboardService
}

func NewNotificationHandler(service *services.DashboardService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// List regenerates the user's notifications from a fresh snapshot. An
// optional ?severity=info|warning|danger query restricts the result; the
// filter never affects generation.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	severity := models.Severity(c.Query("severity"))
	if severity != "" && !severity.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "severity must be info, warning or danger"})
		return
	}

	snapshot, err := h.Service.Snapshot(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching snapshot for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	notifications, err := services.GenerateNotifications(snapshot.Transactions, snapshot.TotalBudget)
	if isDataError(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate notifications"})
		return
	}

	c.JSON(http.StatusOK, services.FilterBySeverity(notifications, severity))
}
