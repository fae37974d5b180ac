package routes

import (
	"database/sql"

	"github.com/fintrack/fintrack-api/handlers"
	"github.com/fintrack/fintrack-api/services"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up public authentication routes.
func SetupAuthRoutes(rg *gin.RouterGroup, db *sql.DB) {
	authHandler := &handlers.AuthHandler{DB: db}

	rg.POST("/auth/signup", authHandler.Signup)
	rg.POST("/auth/login", authHandler.Login)
}

// SetupTransactionRoutes sets up protected transaction CRUD routes.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewTransactionHandler(services.NewTransactionService(db), ws)

	rg.GET("/transactions", h.List)
	rg.POST("/transactions", h.Create)
	rg.PUT("/transactions/:id", h.Update)
	rg.DELETE("/transactions/:id", h.Delete)
}

// SetupBudgetRoutes sets up protected budget and total-budget routes.
func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB, ws *handlers.WSHandler) {
	h := handlers.NewBudgetHandler(services.NewBudgetService(db), ws)

	rg.GET("/budgets", h.List)
	rg.POST("/budgets", h.Create)
	rg.PUT("/budgets/:id", h.Update)
	rg.DELETE("/budgets/:id", h.Delete)

	rg.GET("/total-budget", h.GetTotalBudget)
	rg.PUT("/total-budget", h.SetTotalBudget)
}

// SetupAnalyticsRoutes sets up the derived-view routes: the dashboard bundle,
// the budget tracker view and the notification feed.
func SetupAnalyticsRoutes(rg *gin.RouterGroup, db *sql.DB) {
	dashboardService := services.NewDashboardService(db)

	dashboard := handlers.NewDashboardHandler(dashboardService)
	rg.GET("/dashboard", dashboard.GetDashboard)
	rg.GET("/budgets/status", dashboard.GetBudgetStatus)

	notifications := handlers.NewNotificationHandler(dashboardService)
	rg.GET("/notifications", notifications.List)
}

// SetupUserRoutes sets up protected user routes.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB) {
	userHandler := &handlers.UserHandler{DB: db}

	rg.GET("/user/profile", userHandler.GetProfile)
	rg.PUT("/user/profile", userHandler.UpdateProfile)
	rg.POST("/user/password", userHandler.ChangePassword)
	rg.POST("/user/2fa/setup", userHandler.SetupTOTP)
	rg.POST("/user/2fa/verify", userHandler.VerifyTOTP)
	rg.POST("/user/2fa/disable", userHandler.DisableTOTP)
	rg.DELETE("/user/account", userHandler.DeleteAccount)
}
