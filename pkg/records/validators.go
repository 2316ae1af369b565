package records

// CreateRecordPayload represents the request body for pairing a book with a
// library.
type CreateRecordPayload struct {
	BookID    string `json:"book_id" mod:"trim" validate:"required,min=1,max=100"`
	LibraryID string `json:"library_id" mod:"trim" validate:"required,min=1,max=100"`
}

// CreateActivityPayload represents the request body for recording a check-out
// or check-in against a record.
type CreateActivityPayload struct {
	UserID       string `json:"user_id" mod:"trim" validate:"required,min=1,max=100"`
	ActivityType string `json:"activity_type" validate:"required,oneof=book_check_out book_check_in"`
}

// FindByUserQuery represents the query parameters for the by-user find view.
type FindByUserQuery struct {
	UserID string `query:"user_id" json:"user_id" validate:"required"`
}

// FindByLibraryQuery represents the query parameters for the by-library find
// view.
type FindByLibraryQuery struct {
	LibraryID string `query:"library_id" json:"library_id" validate:"required"`
}
