package testutil

import (
	"fmt"
	"testing"

	"hotpay/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 打开一个独立的内存SQLite库并替换全局DB
// 每个测试用唯一库名，cache=shared 让连接池内的连接共享同一个库
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := model.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := model.DB
	model.DB = db
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
		model.DB = prev
	})
	return db
}
