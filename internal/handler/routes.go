package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, statisticsHandler *StatisticsHandler) {
	e.GET("/categories", categoryHandler.GetCategories)

	e.POST("/transactions", transactionHandler.CreateTransaction)
	e.GET("/transactions/:user_uid", transactionHandler.GetTransactions)
	e.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	e.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	e.GET("/statistics/by-category/:user_uid/:type", statisticsHandler.GetTotalsByCategory)
}
