package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverFile  = "file"
	StorageDriverMySQL = "mysql"

	NotifierDriverGRPC  = "grpc"
	NotifierDriverRedis = "redis"
	NotifierDriverLog   = "log"
)

type Configuration struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Notifier NotifierConfig `mapstructure:"notifier"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type ServerConfig struct {
	GRPCAddress     string        `mapstructure:"grpc_address"`
	HTTPAddress     string        `mapstructure:"http_address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	MySQLDSN string `mapstructure:"mysql_dsn"`
}

type NotifierConfig struct {
	Driver           string        `mapstructure:"driver"`
	InventoryAddress string        `mapstructure:"inventory_address"`
	RedisAddress     string        `mapstructure:"redis_address"`
	Stream           string        `mapstructure:"stream"`
	MaxRetries       uint64        `mapstructure:"max_retries"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// NewConfig loads .env (if present), then config.yaml (if present), then
// PRICING_* environment variables, in increasing order of precedence.
func NewConfig() (*Configuration, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("PRICING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetDefaultConfig returns the configuration used when nothing is overridden.
func GetDefaultConfig() *Configuration {
	v := viper.New()
	setDefaults(v)

	var cfg Configuration
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func (c *Configuration) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverMySQL:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Notifier.Driver {
	case NotifierDriverGRPC, NotifierDriverRedis, NotifierDriverLog:
	default:
		return fmt.Errorf("unknown notifier driver %q", c.Notifier.Driver)
	}

	if c.Server.GRPCAddress == "" {
		return fmt.Errorf("server.grpc_address must not be empty")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.grpc_address", ":50051")
	v.SetDefault("server.http_address", ":8080")
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("storage.driver", StorageDriverFile)
	v.SetDefault("storage.path", "data/prices")
	v.SetDefault("storage.mysql_dsn", "root:root@tcp(localhost:3306)/pricing?parseTime=true")

	v.SetDefault("notifier.driver", NotifierDriverLog)
	v.SetDefault("notifier.inventory_address", "localhost:50052")
	v.SetDefault("notifier.redis_address", "localhost:6379")
	v.SetDefault("notifier.stream", "price:changes")
	v.SetDefault("notifier.max_retries", 3)
	v.SetDefault("notifier.timeout", 3*time.Second)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "json")
}
