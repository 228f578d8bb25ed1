package config

import (
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config はアプリケーション設定を表す
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Booking BookingConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Metrics MetricsConfig
	Worker  WorkerConfig
}

// ServerConfig はサーバー設定
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LogConfig はログ設定
type LogConfig struct {
	Env   string
	Level string
}

// BookingConfig は料金・QRコード・決済シミュレーションの設定
type BookingConfig struct {
	MainHall        string
	MainHallPrice   decimal.Decimal
	StandardPrice   decimal.Decimal
	QRBaseURL       string
	CardDeclineRate float64
	SeatCountPolicy string
}

// RedisConfig はRedis設定
// URL も Host も空なら Redis は使わない
type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

// AMQPConfig はRabbitMQ設定
type AMQPConfig struct {
	URL   string
	Queue string
}

// MetricsConfig はメトリクス認証の設定
type MetricsConfig struct {
	User     string
	Password string
}

// WorkerConfig はバックグラウンドワーカーの設定
type WorkerConfig struct {
	SeatSyncInterval time.Duration
}

// Load は環境変数から設定を読み込む
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Env:   getEnv("APP_ENV", "development"),
			Level: getEnv("LOG_LEVEL", ""),
		},
		Booking: BookingConfig{
			MainHall:        getEnv("MAIN_HALL", "Большой зал"),
			MainHallPrice:   getDecimalEnv("MAIN_HALL_PRICE", decimal.NewFromInt(1500)),
			StandardPrice:   getDecimalEnv("STANDARD_PRICE", decimal.NewFromInt(1000)),
			QRBaseURL:       getEnv("QR_BASE_URL", "https://api.theater.example.com/tickets"),
			CardDeclineRate: getFloatEnv("CARD_DECLINE_RATE", 0.1),
			SeatCountPolicy: getEnv("SEAT_COUNT_POLICY", "clamp"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		AMQP: AMQPConfig{
			URL:   getEnv("AMQP_URL", getEnv("RABBITMQ_URL", "")),
			Queue: getEnv("AMQP_QUEUE", "tickets.sold"),
		},
		Metrics: MetricsConfig{
			User:     getEnv("METRICS_USER", ""),
			Password: getEnv("METRICS_PASSWORD", ""),
		},
		Worker: WorkerConfig{
			SeatSyncInterval: getDurationEnv("SEAT_SYNC_INTERVAL", time.Minute),
		},
	}
}

// Enabled はRedisを使う設定かどうかを返す
func (c *RedisConfig) Enabled() bool {
	return c.URL != "" || c.Host != ""
}

// Addr はRedis接続アドレスを返す
func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// Enabled はイベント配信を行う設定かどうかを返す
func (c *AMQPConfig) Enabled() bool {
	return c.URL != ""
}

// IsEnabled は認証が有効かどうかを返す
func (c *MetricsConfig) IsEnabled() bool {
	return c.User != "" && c.Password != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		// 0 以下は既定値に戻す
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
