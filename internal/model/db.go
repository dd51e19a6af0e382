package model

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// DBConfig 数据库连接池配置
type DBConfig struct {
	MaxOpenConns    int           // 最大打开连接数
	MaxIdleConns    int           // 最大空闲连接数
	ConnMaxLifetime time.Duration // 连接最大生命周期
	ConnMaxIdleTime time.Duration // 空闲连接最大生命周期
	LogLevel        string        // 数据库日志级别: silent, error, warn, info
	SeedDemoData    bool          // 商户表为空时写入演示数据
}

// DefaultDBConfig 默认数据库配置
var DefaultDBConfig = DBConfig{
	MaxOpenConns:    100,
	MaxIdleConns:    10,
	ConnMaxLifetime: time.Hour,
	ConnMaxIdleTime: 10 * time.Minute,
	LogLevel:        "warn",
	SeedDemoData:    true,
}

// InitDB 初始化数据库连接
func InitDB(dsn string) error {
	return InitDBWithConfig(dsn, DefaultDBConfig)
}

// InitDBWithConfig 使用自定义配置初始化数据库连接
func InitDBWithConfig(dsn string, cfg DBConfig) error {
	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// 验证连接
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	// 自动迁移
	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// 初始化演示数据
	if cfg.SeedDemoData {
		if err := seedDemoData(DB); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	log.Printf("Database connected (MaxOpen: %d, MaxIdle: %d)", cfg.MaxOpenConns, cfg.MaxIdleConns)
	return nil
}

// Migrate 迁移表结构（测试环境也使用此函数）
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Merchant{},
		&Invoice{},
		&Payment{},
		&SupportedPaymentOption{},
	)
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// GetDBStats 获取数据库连接池状态
func GetDBStats() map[string]interface{} {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return nil
	}
	stats := sqlDB.Stats()
	return map[string]interface{}{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration":        stats.WaitDuration.String(),
		"max_idle_closed":      stats.MaxIdleClosed,
		"max_lifetime_closed":  stats.MaxLifetimeClosed,
	}
}

// CheckDBHealth 检查数据库健康状态
func CheckDBHealth() error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
