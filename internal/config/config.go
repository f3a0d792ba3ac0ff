package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	App      AppConfig      `yaml:"app"      validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Storage  StorageConfig  `yaml:"storage"  validate:"required"`
	Postgres PostgresConfig `yaml:"postgres"`
	Auth     AuthConfig     `yaml:"auth"     validate:"required"`
	Fare     FareConfig     `yaml:"fare"     validate:"required"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type AppConfig struct {
	Name     string `yaml:"name"     env:"APP_NAME"     env-default:"TrainBooker" validate:"required"`
	Env      string `yaml:"env"      env:"APP_ENV"      env-default:"local"       validate:"required,oneof=local dev prod test"`
	Timezone string `yaml:"timezone" env:"APP_TIMEZONE" env-default:"Local"`
}

// Location возвращает часовой пояс, в котором вводится и хранится время отправления.
func (c AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"  env:"STORAGE_BACKEND"  env-default:"file" validate:"required,oneof=memory file postgres"`
	DataDir string `yaml:"data_dir" env:"STORAGE_DATA_DIR" env-default:"data" validate:"required"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"    validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"         validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"     validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"     validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"trainbooker"  validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"      validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"           validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"            validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"           validate:"gt=0"`
	MigrationsDir   string        `yaml:"migrations_dir"    env:"DB_MIGRATIONS_DIR"    env-default:"migrations"   validate:"required"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type AuthConfig struct {
	MaxFailedAttempts int           `yaml:"max_failed_attempts" env:"AUTH_MAX_FAILED_ATTEMPTS" env-default:"4"  validate:"min=1"`
	LockoutDuration   time.Duration `yaml:"lockout_duration"    env:"AUTH_LOCKOUT_DURATION"    env-default:"5m" validate:"gt=0"`
	BcryptCost        int           `yaml:"bcrypt_cost"         env:"AUTH_BCRYPT_COST"         env-default:"10" validate:"min=4,max=31"`
	// Пароль администратора S001, создаваемого при пустом хранилище.
	BootstrapPassword string `yaml:"bootstrap_password" env:"AUTH_BOOTSTRAP_PASSWORD" env-default:""`
}

type FareConfig struct {
	TaxRate float64 `yaml:"tax_rate" env:"FARE_TAX_RATE" env-default:"1.06" validate:"gte=1"`
}

// SnapshotConfig: нулевой интервал отключает периодическую выгрузку.
type SnapshotConfig struct {
	Interval time.Duration `yaml:"interval" env:"SNAPSHOT_INTERVAL" env-default:"0s"`
	Dir      string        `yaml:"dir"      env:"SNAPSHOT_DIR"      env-default:"snapshots"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	ChatID   int64  `yaml:"chat_id"   env:"TELEGRAM_CHAT_ID"   env-default:"0"`
}

func MustLoad() *Config {
	// .env необязателен: переменные окружения могут быть заданы иначе.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
