package records

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kashihonbooks/kashihon/pkg/binder"
	"github.com/kashihonbooks/kashihon/pkg/errcodes"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func newTestApp(t *testing.T) (*echo.Echo, *bun.DB) {
	t.Helper()

	db := newTestDB(t)
	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle
	RegisterRoutes(e, db)
	return e, db
}

func doRequest(t *testing.T, e *echo.Echo, method, target, payload string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

func TestCreateRecord(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")
	library := createLibrary(ctx, t, db, "Central")

	rr := doRequest(t, e, http.MethodPost, "/library_book_records",
		fmt.Sprintf(`{"book_id":%q,"library_id":%q}`, book.ID, library.ID))
	require.Equal(t, http.StatusOK, rr.Code)

	body := struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    struct {
			ID        string `json:"id"`
			BookID    string `json:"book_id"`
			LibraryID string `json:"library_id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "200", body.Code)
	assert.Equal(t, "LibraryBookRecord Created Successfully", body.Message)
	assert.NotEmpty(t, body.Data.ID)
	assert.Equal(t, book.ID, body.Data.BookID)
	assert.Equal(t, library.ID, body.Data.LibraryID)

	rr = doRequest(t, e, http.MethodGet, "/library_book_records", "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := struct {
		Message string `json:"message"`
		Data    []struct {
			ID string `json:"id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, "LibraryBookRecord List Returned", list.Message)
	require.Len(t, list.Data, 1)
	assert.Equal(t, body.Data.ID, list.Data[0].ID)
}

func TestCreateRecordDuplicate(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")
	library := createLibrary(ctx, t, db, "Central")

	payload := fmt.Sprintf(`{"book_id":%q,"library_id":%q}`, book.ID, library.ID)

	rr := doRequest(t, e, http.MethodPost, "/library_book_records", payload)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = doRequest(t, e, http.MethodPost, "/library_book_records", payload)
	assert.Equal(t, http.StatusConflict, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, float64(http.StatusConflict), body["code"])
	assert.Equal(t, "Book Entry Already Exist", body["message"])
}

func TestCreateRecordMissingBook(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	library := createLibrary(ctx, t, db, "Central")

	rr := doRequest(t, e, http.MethodPost, "/library_book_records",
		fmt.Sprintf(`{"book_id":%q,"library_id":%q}`, uuid.NewString(), library.ID))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Book Not Found", body["message"])
}

func TestCreateRecordMissingLibrary(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")

	rr := doRequest(t, e, http.MethodPost, "/library_book_records",
		fmt.Sprintf(`{"book_id":%q,"library_id":%q}`, book.ID, uuid.NewString()))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Library Not Found", body["message"])
}

func TestCreateActivity(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")
	library := createLibrary(ctx, t, db, "Central")
	user := createUser(ctx, t, db, "leto@arrakis.gov")

	svc := NewService(db)
	record, err := svc.CreateRecord(ctx, CreateRecordOptions{BookID: book.ID, LibraryID: library.ID})
	require.NoError(t, err)

	rr := doRequest(t, e, http.MethodPost, "/library_book_records/"+record.ID+"/activities",
		fmt.Sprintf(`{"user_id":%q,"activity_type":"book_check_out"}`, user.ID))
	require.Equal(t, http.StatusOK, rr.Code)

	body := struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Data    struct {
			ID           string  `json:"id"`
			ActivityType string  `json:"activity_type"`
			CheckedOutAt *string `json:"checked_out_at"`
			CheckedInAt  *string `json:"checked_in_at"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "200", body.Code)
	assert.Equal(t, "Success", body.Message)
	assert.Equal(t, "book_check_out", body.Data.ActivityType)
	assert.NotNil(t, body.Data.CheckedOutAt)
	assert.Nil(t, body.Data.CheckedInAt)

	// The activity shows up in the record's activity list.
	rr = doRequest(t, e, http.MethodGet, "/library_book_records/"+record.ID+"/activities", "")
	require.Equal(t, http.StatusOK, rr.Code)

	list := struct {
		Message string `json:"message"`
		Data    []struct {
			ID string `json:"id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, "Library Book Record Activity List Returned", list.Message)
	require.Len(t, list.Data, 1)
	assert.Equal(t, body.Data.ID, list.Data[0].ID)
}

func TestCreateActivityInvalidType(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	user := createUser(ctx, t, db, "leto@arrakis.gov")

	rr := doRequest(t, e, http.MethodPost, "/library_book_records/"+uuid.NewString()+"/activities",
		fmt.Sprintf(`{"user_id":%q,"activity_type":"book_burned"}`, user.ID))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, `"activity_type" must be one of the following: "book_check_out", "book_check_in"`, body["message"])
}

func TestCreateActivityMissingRecord(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	user := createUser(ctx, t, db, "leto@arrakis.gov")

	rr := doRequest(t, e, http.MethodPost, "/library_book_records/"+uuid.NewString()+"/activities",
		fmt.Sprintf(`{"user_id":%q,"activity_type":"book_check_in"}`, user.ID))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Library Book Record Not Found", body["message"])
}

func TestFindByUser(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")
	library := createLibrary(ctx, t, db, "Central")
	user := createUser(ctx, t, db, "leto@arrakis.gov")

	svc := NewService(db)
	record, err := svc.CreateRecord(ctx, CreateRecordOptions{BookID: book.ID, LibraryID: library.ID})
	require.NoError(t, err)
	_, err = svc.CreateActivity(ctx, record.ID, CreateActivityOptions{
		UserID:       user.ID,
		ActivityType: "book_check_out",
	})
	require.NoError(t, err)

	rr := doRequest(t, e, http.MethodGet, "/library_book_records/find/by_user?user_id="+user.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := struct {
		Message string `json:"message"`
		Data    []struct {
			Title     string `json:"title"`
			LibraryID string `json:"library_id"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "LibraryBookRecord List Returned", body.Message)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Dune", body.Data[0].Title)
	assert.Equal(t, library.ID, body.Data[0].LibraryID)
}

func TestFindByUserMissingParam(t *testing.T) {
	t.Parallel()

	e, _ := newTestApp(t)

	rr := doRequest(t, e, http.MethodGet, "/library_book_records/find/by_user", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, `"user_id" is required`, body["message"])
}

func TestFindByLibrary(t *testing.T) {
	t.Parallel()

	e, db := newTestApp(t)
	ctx := context.Background()

	book := createBook(ctx, t, db, "Dune")
	library := createLibrary(ctx, t, db, "Central")
	user := createUser(ctx, t, db, "leto@arrakis.gov")

	svc := NewService(db)
	record, err := svc.CreateRecord(ctx, CreateRecordOptions{BookID: book.ID, LibraryID: library.ID})
	require.NoError(t, err)
	_, err = svc.CreateActivity(ctx, record.ID, CreateActivityOptions{
		UserID:       user.ID,
		ActivityType: "book_check_in",
	})
	require.NoError(t, err)

	rr := doRequest(t, e, http.MethodGet, "/library_book_records/find/by_library?library_id="+library.ID, "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := struct {
		Message string `json:"message"`
		Data    []struct {
			LibraryBookID string `json:"library_book_id"`
			ActivityType  string `json:"activity_type"`
		} `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "LibraryBookRecord List Returned", body.Message)
	require.Len(t, body.Data, 1)
	assert.Equal(t, record.ID, body.Data[0].LibraryBookID)
	assert.Equal(t, "book_check_in", body.Data[0].ActivityType)
}
