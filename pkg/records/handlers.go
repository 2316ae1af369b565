package records

import (
	"github.com/kashihonbooks/kashihon/pkg/respond"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	recordService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateRecordPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.recordService.CreateRecord(ctx, CreateRecordOptions(params))
	if err != nil {
		return err
	}

	return respond.OK(c, "LibraryBookRecord Created Successfully", record)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	records, err := h.recordService.ListRecords(ctx)
	if err != nil {
		return err
	}

	return respond.OK(c, "LibraryBookRecord List Returned", records)
}

func (h *handler) createActivity(c echo.Context) error {
	ctx := c.Request().Context()
	libraryBookID := c.Param("library_book_id")

	params := CreateActivityPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	activity, err := h.recordService.CreateActivity(ctx, libraryBookID, CreateActivityOptions(params))
	if err != nil {
		return err
	}

	return respond.OK(c, "Success", activity)
}

func (h *handler) listActivities(c echo.Context) error {
	ctx := c.Request().Context()
	libraryBookID := c.Param("library_book_id")

	activities, err := h.recordService.ListActivities(ctx, libraryBookID)
	if err != nil {
		return err
	}

	return respond.OK(c, "Library Book Record Activity List Returned", activities)
}

func (h *handler) findByUser(c echo.Context) error {
	ctx := c.Request().Context()

	params := FindByUserQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	rows, err := h.recordService.FindByUser(ctx, params.UserID)
	if err != nil {
		return err
	}

	return respond.OK(c, "LibraryBookRecord List Returned", rows)
}

func (h *handler) findByLibrary(c echo.Context) error {
	ctx := c.Request().Context()

	params := FindByLibraryQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	rows, err := h.recordService.FindByLibrary(ctx, params.LibraryID)
	if err != nil {
		return err
	}

	return respond.OK(c, "LibraryBookRecord List Returned", rows)
}
