package users

// CreateUserPayload represents the request body for creating a user account.
type CreateUserPayload struct {
	Name  string `json:"name" mod:"trim" validate:"required,min=1,max=50"`
	Email string `json:"email" mod:"trim" validate:"required,min=1,max=100"`
}
