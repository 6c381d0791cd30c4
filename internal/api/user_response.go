package api

// UserResponse 回傳的使用者資訊，欄位與存檔格式一致
// swagger:model api.UserResponse
type UserResponse struct {
	ID       int    `json:"id" example:"0"`
	Email    string `json:"email" example:"alice@example.com"`
	Name     string `json:"name" example:"Alice"`
	Lastname string `json:"lastname" example:"Smith"`
	Password string `json:"password" example:"Secret123!"`
	Phone    int    `json:"phone" example:"5551234"`
	Age      int    `json:"age" example:"30"`
}
