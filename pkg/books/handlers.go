package books

import (
	"github.com/kashihonbooks/kashihon/pkg/respond"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.CreateBook(ctx, CreateBookOptions(params))
	if err != nil {
		return err
	}

	return respond.OK(c, "Book Created Successfully", book)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	books, err := h.bookService.ListBooks(ctx)
	if err != nil {
		return err
	}

	return respond.OK(c, "Book List Returned", books)
}
