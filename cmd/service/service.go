// @title        User Admin Panel API
// @version      1.0
// @description  使用者管理面板的後端 API 文件
// @host         localhost:8080
// @BasePath     /server
package main

import (
	"fmt"
	"log"
	"os"

	"user-admin-panel/internal/config"
	"user-admin-panel/internal/router"
	"user-admin-panel/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "user-admin-panel/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig   = config.Load
	newFileStore = func(path string) store.UserStore { return store.NewFileStore(path) }
	startServer  = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc     = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %v", err)
	}

	s := newFileStore(cfg.DatabaseFile)
	defer s.Close()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Debug = cfg.Debug
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, s, cfg.DistDir)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.Addr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
