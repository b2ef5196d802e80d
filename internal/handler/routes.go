package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, costHandler *CostHandler, viewHandler *ViewHandler, monthHandler *MonthHandler, backupHandler *BackupHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Cost catalog routes
	costs := api.Group("/costs")
	costs.POST("", costHandler.CreateCost)
	costs.GET("", costHandler.GetCosts)
	costs.PUT("/:id", costHandler.UpdateCost)
	costs.DELETE("/:id", costHandler.DeleteCost)
	costs.POST("/move", costHandler.MoveCost)
	costs.PATCH("/:id/toggle-paid", costHandler.TogglePaid)

	// Derived month view routes
	view := api.Group("/view")
	view.GET("/:month", viewHandler.GetView)
	view.GET("/:month/calendar", viewHandler.GetCalendar)

	// View-month and monthly figure routes
	months := api.Group("/months")
	months.GET("/current", monthHandler.GetCurrentMonth)
	months.PUT("/current", monthHandler.SetCurrentMonth)
	months.PUT("/:month/income", monthHandler.SetIncome)
	months.PUT("/:month/savings", monthHandler.SetSavings)

	// Backup routes
	backup := api.Group("/backup")
	backup.GET("/export", backupHandler.Export)
	backup.POST("/import", backupHandler.Import)
	backup.POST("/reset", backupHandler.Reset)
}
