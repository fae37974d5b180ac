package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// GetDashboard recomputes and returns every derived view for the user.
// Stored rows failing engine validation surface as 422: storage constraints
// should make that impossible, but the engine refuses bad records rather
// than silently dropping them.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := middleware.GetUserID(c)

	views, err := h.Service.Views(c.Request.Context(), userID)
	if isDataError(err) {
		log.Printf("Malformed transaction data for user %s: %v", userID, err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error computing dashboard for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetBudgetStatus returns only the budget tracker's view: per-budget statuses
// plus overall progress against the total budget.
func (h *DashboardHandler) GetBudgetStatus(c *gin.Context) {
	userID := middleware.GetUserID(c)

	snapshot, err := h.Service.Snapshot(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching snapshot for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budget data"})
		return
	}

	statuses, err := services.BudgetStatuses(snapshot.Budgets, snapshot.Transactions, time.Now())
	if isDataError(err) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute budget status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": statuses,
		"progress": services.Progress(statuses, snapshot.TotalBudget),
	})
}
