package testutil

import (
	"event_passport_backend/internal/config"
	"event_passport_backend/pkg/database"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB 每个测试独立的内存 SQLite 库，经由与生产相同的 Open/Migrate 路径
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	cfg := &config.DatabaseConfig{
		Driver: database.DriverSQLite,
		Path:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	}

	db, err := database.Open(cfg, logger.Discard)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// 共享缓存的内存库在最后一个连接关闭时销毁；单连接同时避免 SQLITE_LOCKED
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

const (
	AdminUsername = "admin"
	AdminPassword = "correct-horse-battery"
)

// NewTestConfig 内存会话、本地临时目录存储
func NewTestConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Server: config.ServerConfig{Port: "0", Mode: "test"},
		JWT: config.JWTConfig{
			Secret:     "test-secret-that-is-long-enough-for-hs256",
			ExpireTime: time.Hour,
		},
		Admin: config.AdminConfig{
			Username: AdminUsername,
			Password: AdminPassword,
		},
		Session: config.SessionConfig{Store: "memory"},
		Storage: config.StorageConfig{
			Type:      "local",
			LocalPath: t.TempDir(),
		},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}
