package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/fintrack/fintrack-api/middleware"
	"github.com/fintrack/fintrack-api/models"
	"github.com/fintrack/fintrack-api/services"

	"github.com/gin-gonic/gin"
)

type BudgetHandler struct {
	Service *services.BudgetService
	WS      *WSHandler
}

func NewBudgetHandler(service *services.BudgetService, ws *WSHandler) *BudgetHandler {
	return &BudgetHandler{Service: service, WS: ws}
}

func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	budgets, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing budgets for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}

	c.JSON(http.StatusOK, budgets)
}

func (h *BudgetHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.Create(c.Request.Context(), userID, req)
	if errors.Is(err, services.ErrNegativeBudget) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error creating budget for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}

	h.WS.BroadcastRefresh(userID, "budget_created")
	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

func (h *BudgetHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	budget, err := h.Service.Update(c.Request.Context(), userID, id, req)
	if errors.Is(err, services.ErrNegativeBudget) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating budget %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		return
	}

	h.WS.BroadcastRefresh(userID, "budget_updated")
	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), userID, id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting budget %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	h.WS.BroadcastRefresh(userID, "budget_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted"})
}

func (h *BudgetHandler) GetTotalBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)

	total, err := h.Service.GetTotalBudget(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error fetching total budget for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch total budget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_budget": total})
}

func (h *BudgetHandler) SetTotalBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.SetTotalBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.SetTotalBudget(c.Request.Context(), userID, req.TotalBudget); err != nil {
		if errors.Is(err, services.ErrNegativeBudget) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error setting total budget for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set total budget"})
		return
	}

	h.WS.BroadcastRefresh(userID, "total_budget_updated")
	c.JSON(http.StatusOK, gin.H{"total_budget": req.TotalBudget})
}
