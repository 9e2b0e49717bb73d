// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "trade-practice"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort     = ":8080"
	DefaultDatabaseDriver = "postgres"
	DefaultLogLevel       = "info"
	DefaultDailyQuota     = 5
	DefaultHistoryLimit   = 10
	MaxHistoryLimit       = 50
	DefaultTimezone       = "UTC"
	DefaultCacheTTL       = 10 * time.Minute
)
