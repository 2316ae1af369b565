package books

// CreateBookPayload represents the request body for creating a book. There is
// no uniqueness rule on ISBN; every valid payload creates a new book.
type CreateBookPayload struct {
	Title       string `json:"title" mod:"trim" validate:"required,min=1,max=100"`
	AuthorName  string `json:"author_name" mod:"trim" validate:"required,min=1,max=150"`
	ISBNNumber  string `json:"isbn_number" mod:"trim" validate:"required,min=1,max=150"`
	Generation  string `json:"generation" mod:"trim" validate:"required,min=1,max=150"`
	Description string `json:"description" mod:"trim" validate:"required,min=1,max=150"`
}
