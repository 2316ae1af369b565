// Package respond provides the success response envelope shared by every
// endpoint: {code, message, data}.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type Envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// OK writes a 200 response wrapping data in the envelope.
func OK(c echo.Context, message string, data interface{}) error {
	return errors.WithStack(c.JSON(http.StatusOK, Envelope{
		Code:    "200",
		Message: message,
		Data:    data,
	}))
}
