package libraries

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all library routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		libraryService: NewService(db),
	}

	libraries := e.Group("/libraries")
	libraries.POST("", h.create)
	libraries.GET("", h.list)
}
