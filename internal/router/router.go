// File: internal/router/router.go
package router

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"user-admin-panel/internal/handler/users"
	"user-admin-panel/internal/store"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, s store.UserStore, distDir string) {
	// 前後端分離部署，任何來源皆可呼叫
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))

	// React 前端進入點與靜態資源
	e.File("/", filepath.Join(distDir, "index.html"))
	e.Static("/assets", filepath.Join(distDir, "assets"))

	srv := e.Group("/server")
	srv.POST("/new_user", users.CreateUserHandler(s))
	srv.GET("/list_of_users", users.ListUsersHandler(s))
	srv.GET("/edit_user/", users.UpdateUserHandler(s))
	srv.GET("/delete_user/:id", users.DeleteUserHandler(s))
}
