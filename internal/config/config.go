package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	Redis   RedisConfig
	Storage StorageConfig
	Broker  BrokerConfig
	LLM     LLMConfig
	Upload  UploadConfig
}

type AppConfig struct {
	Port        string
	Env         string
	CORSOrigins string
}

type StoreDriver string

const (
	StoreFile     StoreDriver = "file"
	StorePostgres StoreDriver = "postgres"
	StoreSQLite   StoreDriver = "sqlite"
)

type StoreConfig struct {
	Driver      StoreDriver
	DataDir     string
	DatabaseURL string
	SQLitePath  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host is configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type StorageConfig struct {
	AccountID string
	AccessKey string
	SecretKey string
	Bucket    string
	Endpoint  string
}

type BrokerConfig struct {
	URL      string
	Exchange string
}

type LLMConfig struct {
	Provider     string
	GeminiAPIKey string
	GroqAPIKey   string
	OpenAIAPIKey string
	Model        string
	BaseURL      string
}

type UploadConfig struct {
	MaxSizeMB int
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Port:        getEnv("APP_PORT", "8000"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Store: StoreConfig{
			Driver:      StoreDriver(strings.ToLower(getEnv("STORE_DRIVER", string(StoreFile)))),
			DataDir:     getEnv("DATA_DIR", "data"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			SQLitePath:  getEnv("SQLITE_PATH", "data/skillorbit.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			AccountID: getEnv("R2_ACCOUNT_ID", ""),
			AccessKey: getEnv("R2_ACCESS_KEY", ""),
			SecretKey: getEnv("R2_SECRET_KEY", ""),
			Bucket:    getEnv("R2_BUCKET", ""),
			Endpoint:  getEnv("R2_ENDPOINT", ""),
		},
		Broker: BrokerConfig{
			URL:      getEnv("RABBITMQ_URL", ""),
			Exchange: getEnv("RABBITMQ_EXCHANGE", "skillorbit_events"),
		},
		LLM: LLMConfig{
			Provider:     strings.ToLower(getEnv("LLM_PROVIDER", "")),
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
			Model:        getEnv("LLM_MODEL", ""),
			BaseURL:      getEnv("LLM_BASE_URL", ""),
		},
		Upload: UploadConfig{
			MaxSizeMB: getEnvAsInt("MAX_UPLOAD_MB", 5),
		},
	}
}

func (c *Config) IsProduction() bool {
	return getEnvAsBool("APP_PRODUCTION", c.App.Env == "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
