package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Security SecurityConfig `mapstructure:"security"`
	Log      LogConfig      `mapstructure:"log"`
	Seed     SeedConfig     `mapstructure:"seed"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`    // 最大打开连接数
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`    // 最大空闲连接数
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // 连接最大生命周期(分钟)
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"` // 允许的来源域名
}

// LogConfig 日志配置
type LogConfig struct {
	DBLogLevel string `mapstructure:"db_log_level"` // 数据库日志级别: silent, error, warn, info
}

// SeedConfig 演示数据配置
type SeedConfig struct {
	DemoData bool `mapstructure:"demo_data"` // 商户表为空时写入演示数据
}

var cfg *Config

// getExeDir 获取可执行文件所在目录
func getExeDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// 获取可执行文件所在目录
	exeDir := getExeDir()

	// 按优先级添加配置路径
	viper.AddConfigPath(exeDir)        // 可执行文件所在目录 (开发/部署环境)
	viper.AddConfigPath(".")           // 当前工作目录
	viper.AddConfigPath("./config")    // 当前目录下的config目录
	viper.AddConfigPath("/etc/hotpay") // 系统配置目录 (生产环境)

	// 设置默认值
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 配置文件不存在，创建默认配置
			if err := createDefaultConfig(); err != nil {
				return nil, fmt.Errorf("failed to create default config: %w", err)
			}
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

func Get() *Config {
	return cfg
}

func setDefaults() {
	// Server
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 6090)

	// Database
	viper.SetDefault("database.host", "127.0.0.1")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.user", "hotpay")
	viper.SetDefault("database.password", "hotpay123")
	viper.SetDefault("database.dbname", "hotpay")
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.conn_max_lifetime", 60) // 60分钟

	// Security
	viper.SetDefault("security.cors_allow_origins", []string{})

	// Log
	viper.SetDefault("log.db_log_level", "warn")

	// Seed
	viper.SetDefault("seed.demo_data", true)
}

func createDefaultConfig() error {
	configContent := `# HotPay 配置文件

server:
  host: "0.0.0.0"
  port: 6090

database:
  host: "127.0.0.1"
  port: 3306
  user: "hotpay"
  password: "hotpay123"
  dbname: "hotpay"
  max_open_conns: 100
  max_idle_conns: 10
  conn_max_lifetime: 60

security:
  cors_allow_origins: []

log:
  db_log_level: "warn"

seed:
  demo_data: true
`

	// 在可执行文件所在目录创建配置文件
	configPath := filepath.Join(getExeDir(), "config.yaml")
	return os.WriteFile(configPath, []byte(configContent), 0644)
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
