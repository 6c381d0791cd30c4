// File: internal/model/user.go
package model

// User 使用者資料，JSON tag 即為 users.json 的存檔格式
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Password string `json:"password"`
	Phone    int    `json:"phone"`
	Age      int    `json:"age"`
}

// UserList 全部使用者的有序清單，為持久化的最小單位
// 第 i 筆資料的 ID 恆等於 i
type UserList []User
