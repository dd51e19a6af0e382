package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotpay/config"
	"hotpay/internal/handler"
	"hotpay/internal/middleware"
	"hotpay/internal/model"

	"github.com/gin-gonic/gin"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库（使用配置的连接池参数）
	dbConfig := model.DBConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
		LogLevel:        cfg.Log.DBLogLevel,
		SeedDemoData:    cfg.Seed.DemoData,
	}
	if err := model.InitDBWithConfig(cfg.Database.DSN(), dbConfig); err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}

	// 设置Gin模式
	gin.SetMode(gin.ReleaseMode)

	// 创建路由
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	// CORS（使用配置的域名白名单）
	r.Use(middleware.CORSWithConfig(cfg.Security.CORSAllowOrigins))

	// 注册路由
	handler.Register(r)

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("HotPay server starting on %s", addr)

	go func() {
		if err := r.Run(addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server exited")
}
