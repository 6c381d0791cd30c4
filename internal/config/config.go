package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config 服務設定，全部由環境變數載入
type Config struct {
	Addr         string `env:"ADDR" envDefault:":8080"`               // HTTP 服務監聽位址
	DatabaseFile string `env:"DATABASE_FILE" envDefault:"users.json"` // 使用者清單的 JSON 檔案路徑
	DistDir      string `env:"DIST_DIR" envDefault:"dist"`            // 前端編譯輸出目錄
	Debug        bool   `env:"DEBUG" envDefault:"true"`               // 開啟 echo 除錯模式
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
