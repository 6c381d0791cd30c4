package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"user-admin-panel/internal/api"
	"user-admin-panel/internal/model"
	"user-admin-panel/internal/store"

	"github.com/labstack/echo/v4"
)

// @Summary     Create a new user
// @Description 接收 JSON 表單資料並建立新使用者，id 由清單長度決定
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     200  "OK"
// @Failure     400  {object} api.ErrorResponse
// @Failure     500  {object} api.ErrorResponse
// @Router      /new_user [post]
func CreateUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if _, err := s.CreateUser(c.Request().Context(), &model.User{
			Email:    req.Email,
			Name:     req.Name,
			Lastname: req.Lastname,
			Password: req.Password,
			Phone:    req.Phone,
			Age:      req.Age,
		}); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusOK)
	}
}

// @Summary     List all users
// @Description 回傳所有使用者及其資料；資料檔不存在時回傳空陣列
// @Tags        users
// @Produce     json
// @Success     200 {array}  api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /list_of_users [get]
func ListUsersHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		list, err := s.ListUsers(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.UserResponse, 0, len(list))
		for _, u := range list {
			resp = append(resp, api.UserResponse{
				ID:       u.ID,
				Email:    u.Email,
				Name:     u.Name,
				Lastname: u.Lastname,
				Password: u.Password,
				Phone:    u.Phone,
				Age:      u.Age,
			})
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update a user by ID
// @Description 以 user_data 查詢參數（URL-encoded JSON）指定使用者及新資料
// @Tags        users
// @Produce     json
// @Param       user_data query string true "含 id 與全部欄位的 JSON 物件"
// @Success     200  "OK"
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse "使用者不存在"
// @Failure     500  {object} api.ErrorResponse
// @Router      /edit_user/ [get]
func UpdateUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.QueryParam("user_data")
		if raw == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "missing user_data"})
		}

		var req api.UpdateUserRequest
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user_data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err := s.UpdateUser(c.Request().Context(), req.ID, &model.User{
			Email:    req.Email,
			Name:     req.Name,
			Lastname: req.Lastname,
			Password: req.Password,
			Phone:    req.Phone,
			Age:      req.Age,
		})
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusOK)
	}
}

// @Summary     Delete a user by ID
// @Description 刪除指定使用者，其後所有使用者的 id 會重新編號
// @Tags        users
// @Produce     json
// @Param       id   path      int  true  "使用者 ID"
// @Success     200  "OK"
// @Failure     400  {object}  api.ErrorResponse  "參數錯誤"
// @Failure     404  {object}  api.ErrorResponse  "使用者不存在"
// @Failure     500  {object}  api.ErrorResponse  "伺服器錯誤"
// @Router      /delete_user/{id} [get]
func DeleteUserHandler(s store.UserStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		err = s.DeleteUser(c.Request().Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "user not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusOK)
	}
}
