package users

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers all user routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{
		userService: NewService(db),
	}

	users := e.Group("/users")
	users.POST("", h.create)
	users.GET("", h.list)
}
