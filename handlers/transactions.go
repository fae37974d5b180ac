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

type TransactionHandler struct {
	Service *services.TransactionService
	WS      *WSHandler
}

func NewTransactionHandler(service *services.TransactionService, ws *WSHandler) *TransactionHandler {
	return &TransactionHandler{Service: service, WS: ws}
}

func isDataError(err error) bool {
	return errors.Is(err, services.ErrBadDate) ||
		errors.Is(err, services.ErrNegativeAmount) ||
		errors.Is(err, services.ErrBadType)
}

func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	transactions, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Error listing transactions for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req models.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.Service.Create(c.Request.Context(), userID, req)
	if isDataError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error creating transaction for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		return
	}

	h.WS.BroadcastRefresh(userID, "transaction_created")
	c.JSON(http.StatusCreated, gin.H{"message": "Transaction added", "transaction": transaction})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	var req models.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transaction, err := h.Service.Update(c.Request.Context(), userID, id, req)
	if isDataError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating transaction %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	h.WS.BroadcastRefresh(userID, "transaction_updated")
	c.JSON(http.StatusOK, gin.H{"message": "Transaction updated", "transaction": transaction})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)
	id := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), userID, id)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting transaction %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}

	h.WS.BroadcastRefresh(userID, "transaction_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}
