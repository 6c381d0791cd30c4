// File: internal/api/update_user_request.go
package api

// UpdateUserRequest 由 user_data 查詢參數中的 JSON 解碼而來
// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	ID       int    `json:"id" validate:"gte=0" example:"0"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	Lastname string `json:"lastname" validate:"required" example:"Smith"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
	Phone    int    `json:"phone" validate:"required" example:"5551234"`
	Age      int    `json:"age" validate:"required" example:"30"`
}
