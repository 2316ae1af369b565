package libraries

import (
	"github.com/kashihonbooks/kashihon/pkg/respond"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	libraryService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateLibraryPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	library, err := h.libraryService.CreateLibrary(ctx, CreateLibraryOptions(params))
	if err != nil {
		return err
	}

	return respond.OK(c, "Library Created Successfully", library)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	libraries, err := h.libraryService.ListLibraries(ctx)
	if err != nil {
		return err
	}

	return respond.OK(c, "Library List Returned", libraries)
}
