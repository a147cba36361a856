// Package router assembles the HTTP API.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "verde/internal/docs" // Import swagger docs
	"verde/internal/handlers"
	"verde/internal/middleware"
	"verde/internal/services"
)

// Services bundles the backends the API is served from.
type Services struct {
	Ledger    *services.Finance
	Audit     services.AuditServicer
	Snapshots services.NetWorthSnapshotServicer
	// Now stamps net-worth snapshots. Nil means time.Now.
	Now func() time.Time
}

// New builds the gin engine with every route mounted under /api/v1.
func New(svc Services) *gin.Engine {
	categoryHandler := handlers.NewCategoryHandler(svc.Ledger)
	accountHandler := handlers.NewAccountHandler(svc.Ledger)
	transactionHandler := handlers.NewTransactionHandler(svc.Ledger)
	budgetHandler := handlers.NewBudgetHandler(svc.Ledger)
	scheduleHandler := handlers.NewScheduleHandler(svc.Ledger)
	investmentHandler := handlers.NewInvestmentHandler(svc.Ledger)
	goalHandler := handlers.NewGoalHandler(svc.Ledger)
	profileHandler := handlers.NewProfileHandler(svc.Ledger)
	summaryHandler := handlers.NewSummaryHandler(svc.Ledger, svc.Ledger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", profileHandler.Login)
	auth.POST("/logout", profileHandler.Logout)

	profile := v1.Group("/profile")
	profile.GET("", profileHandler.GetProfile)
	profile.PUT("", profileHandler.UpdateProfile)
	profile.GET("/score", profileHandler.GetScore)
	profile.POST("/score/recompute", profileHandler.RecomputeScore)

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.POST("/:id/adjust", accountHandler.AdjustBalance)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.POST("/import", transactionHandler.ImportTransactions)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.POST("/refresh", budgetHandler.RefreshBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)

	schedules := v1.Group("/schedules")
	schedules.POST("", scheduleHandler.CreateSchedule)
	schedules.GET("", scheduleHandler.GetSchedules)
	schedules.GET("/:id", scheduleHandler.GetSchedule)
	schedules.PUT("/:id", scheduleHandler.UpdateSchedule)
	schedules.DELETE("/:id", scheduleHandler.DeleteSchedule)
	schedules.POST("/:id/pay", scheduleHandler.PaySchedule)

	investments := v1.Group("/investments")
	investments.POST("", investmentHandler.CreateInvestment)
	investments.GET("", investmentHandler.GetInvestments)
	investments.GET("/portfolio", investmentHandler.GetPortfolio)
	investments.GET("/:id", investmentHandler.GetInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoal)
	goals.PUT("/:id", goalHandler.UpdateGoal)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	v1.GET("/dashboard", summaryHandler.GetDashboard)
	v1.GET("/dashboard/months", summaryHandler.GetMonths)
	v1.GET("/state", summaryHandler.GetState)

	if svc.Audit != nil {
		auditHandler := handlers.NewAuditHandler(svc.Audit)
		v1.GET("/audit-logs", auditHandler.GetAuditLogs)
	}

	if svc.Snapshots != nil {
		netWorthHandler := handlers.NewNetWorthHandler(svc.Snapshots, svc.Now)
		snapshots := v1.Group("/net-worth/snapshots")
		snapshots.POST("", netWorthHandler.RecordSnapshot)
		snapshots.GET("", netWorthHandler.GetSnapshots)
	}

	return router
}
