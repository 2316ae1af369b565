package records

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all library book record routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		recordService: NewService(db),
	}

	records := e.Group("/library_book_records")
	records.POST("", h.create)
	records.GET("", h.list)
	records.POST("/:library_book_id/activities", h.createActivity)
	records.GET("/:library_book_id/activities", h.listActivities)
	records.GET("/find/by_user", h.findByUser)
	records.GET("/find/by_library", h.findByLibrary)
}
