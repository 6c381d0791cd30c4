package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	Lastname string `json:"lastname" validate:"required" example:"Smith"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Phone    int    `json:"phone" validate:"required" example:"5551234"`
	Age      int    `json:"age" validate:"required" example:"30"`
}
