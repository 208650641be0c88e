package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StorageRedis    = "redis"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"8080"`
		Origin string `env:"ORIGIN" envDefault:"http://localhost:3000"`
	}

	Storage struct {
		Driver string `env:"STORAGE_DRIVER" envDefault:"file"`
		Key    string `env:"STORAGE_KEY" envDefault:"raffles"`
		File   string `env:"STORAGE_FILE" envDefault:"data/raffles.json"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Postgres PostgresConfig

	SQLite struct {
		Path string `env:"SQLITE_PATH" envDefault:"data/raffles.sqlite3"`
	}

	Mongo struct {
		URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
		Database string `env:"MONGO_DATABASE" envDefault:"raffles"`
	}

	Auth struct {
		JWTSecret         string        `env:"JWT_SECRET" envDefault:""`
		JWTTTL            time.Duration `env:"JWT_TTL" envDefault:"12h"`
		AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
		AdminPassword     string        `env:"ADMIN_PASSWORD" envDefault:""`
		AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH" envDefault:""`
	}

	Telegram struct {
		BotToken    string        `env:"BOT_TOKEN" envDefault:""`
		AdminIDs    []int64       `env:"ADMIN_IDS" envSeparator:","`
		InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`

		// NotifyDraws sends draw results to ADMIN_IDS through the bot.
		NotifyDraws bool `env:"TELEGRAM_NOTIFY_DRAWS" envDefault:"false"`
	}
}

type PostgresConfig struct {
	Host            string        `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port            int           `env:"POSTGRES_PORT" envDefault:"5432"`
	User            string        `env:"POSTGRES_USER" envDefault:"postgres"`
	Password        string        `env:"POSTGRES_PASSWORD" envDefault:""`
	Database        string        `env:"POSTGRES_DB" envDefault:"raffles"`
	SSLMode         string        `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxOpenConns    int           `env:"POSTGRES_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"POSTGRES_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"POSTGRES_CONN_MAX_LIFETIME" envDefault:"30m"`
}

func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// AuthEnabled reports whether mutating endpoints require an admin.
func (c *Config) AuthEnabled() bool {
	return c.Auth.JWTSecret != "" || c.Telegram.BotToken != ""
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, production sets variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageFile, StorageRedis, StorageSQLite, StoragePostgres, StorageMongo:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Auth.JWTSecret != "" && c.Auth.AdminPassword == "" && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required when JWT_SECRET is set")
	}
	return nil
}
