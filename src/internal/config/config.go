// Package config 載入應用設定（環境變數）
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix 環境變數前綴
const EnvPrefix = ""

// Config 應用設定
//
// 全部有預設值：不設任何環境變數也能直接執行。
type Config struct {
	// DBPath SQLite 資料庫檔案路徑
	DBPath string `envconfig:"REWARDY_DB_PATH" default:"rewardy.db"`

	// LogLevel zerolog 等級（debug / info / warn / error）
	LogLevel string `envconfig:"REWARDY_LOG_LEVEL" default:"warn"`
}

// Load 從環境變數載入設定
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
