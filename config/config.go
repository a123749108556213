package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Bootstrap BootstrapConfig
	LogLevel  string
}

type ServerConfig struct {
	Port     string
	Mode     string
	Timezone string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret     string
	AccessTTLMin  int
	SessionTTLMin int
	BcryptCost    int
	SessionCookie string
}

// BootstrapConfig 預設帳號的初始密碼
type BootstrapConfig struct {
	Password string
}

var AppConfig *Config

func LoadConfig() *Config {
	// .env 不存在時直接使用環境變數
	_ = godotenv.Load()

	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Auth:      GetAuthConfig(),
		Bootstrap: BootstrapConfig{Password: getEnv("BOOTSTRAP_PASSWORD", "password")},
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
	}

	return &Config{
		Server:   ServerConfig{Port: "0", Mode: "test", Timezone: "UTC"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Auth: AuthConfig{
			JWTSecret:     "test-secret",
			AccessTTLMin:  5,
			SessionTTLMin: 5,
			BcryptCost:    4,
			SessionCookie: "CIRCUS_SESSION",
		},
		Bootstrap: BootstrapConfig{Password: "password"},
		LogLevel:  "error",
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnv("APP_PORT", "8080"),
		Mode:     getEnv("GIN_MODE", "release"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "circus"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
		MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),
	}
}

func GetRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       getEnvInt("REDIS_DB", 0),
	}
}

func GetAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		AccessTTLMin:  getEnvInt("ACCESS_TOKEN_TTL_MIN", 60),
		SessionTTLMin: getEnvInt("SESSION_TTL_MIN", 720),
		BcryptCost:    getEnvInt("BCRYPT_COST", 10),
		SessionCookie: getEnv("SESSION_COOKIE", "CIRCUS_SESSION"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(err)
	}
	return n
}
