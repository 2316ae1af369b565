package libraries

// CreateLibraryPayload represents the request body for creating a library.
type CreateLibraryPayload struct {
	Name       string `json:"name" mod:"trim" validate:"required,min=1,max=100"`
	City       string `json:"city" mod:"trim" validate:"required,min=1,max=150"`
	State      string `json:"state" mod:"trim" validate:"required,min=1,max=150"`
	PostalCode string `json:"postal_code" mod:"trim" validate:"required,min=1,max=150"`
}
