package config

import (
	"flag"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type StorageType string

const (
	StorageTypeAuto     StorageType = ""
	StorageTypeInMemory StorageType = "memory"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
	StorageTypeRedis    StorageType = "redis"
	StorageTypeMongo    StorageType = "mongo"
)

const EnvProduction = "production"

const (
	defaultServerAddress   = "localhost:8080"
	defaultBaseDomain      = "domain.com"
	defaultSQLitePath      = "./shortener.sqlite"
	defaultMongoDatabase   = "shortener"
	defaultReadLimit       = 1000
	defaultQRSize          = 256
	defaultLogLevel        = "info"
	defaultAppEnv          = "development"
	defaultShutdownTimeout = 10 * time.Second
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Адрес на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS" json:"server_address"`
	// Домен результирующего сокращенного URL, без схемы
	BaseDomain string `env:"BASE_DOMAIN" json:"base_domain"`
	// Тип хранилища. Пустое значение означает автоопределение
	Storage StorageType `env:"STORAGE" json:"storage"`
	// DSN для подключения к postgres
	DatabaseDSN string `env:"DATABASE_DSN" json:"-"`
	// Путь к файлу базы sqlite
	SQLitePath    string `env:"SQLITE_PATH" json:"sqlite_path"`
	RedisAddr     string `env:"REDIS_ADDR" json:"redis_addr"`
	RedisPassword string `env:"REDIS_PASSWORD" json:"-"`
	RedisDB       int    `env:"REDIS_DB" json:"redis_db"`
	MongoURL      string `env:"MONGO_URL" json:"-"`
	MongoDatabase string `env:"DB_NAME" json:"mongo_database"`
	// Сколько записей максимум отдает список ссылок
	ReadLimit int `env:"READ_LIMIT" json:"read_limit"`
	// Размер стороны QR-кода в пикселях
	QRSize          int           `env:"QR_SIZE" json:"qr_size"`
	LogLevel        string        `env:"LOG_LEVEL" json:"log_level"`
	AppEnv          string        `env:"APP_ENV" json:"app_env"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" json:"shutdown_timeout"`
}

// IsProduction сообщает, запущено ли приложение в продакшн окружении.
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

// StorageType возвращает тип хранилища с учетом автоопределения:
// DSN postgres, затем mongo, затем redis, иначе in-memory. sqlite выбирается только явно.
func (c *Config) StorageType() StorageType {
	if c.Storage != StorageTypeAuto {
		return c.Storage
	}
	switch {
	case c.DatabaseDSN != "":
		return StorageTypePostgres
	case c.MongoURL != "":
		return StorageTypeMongo
	case c.RedisAddr != "":
		return StorageTypeRedis
	default:
		return StorageTypeInMemory
	}
}

// LoadConfig собирает конфигурацию из `.env` файла, флагов и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
//
// Параметры:
//   - args: аргументы командной строки без имени программы
//
// Возвращает:
//   - *Config: конфигурация приложения
//   - error: ошибка разбора или валидации
func LoadConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env file")
	}

	conf := defaultConfig()

	if err := loadFlags(conf, args); err != nil {
		return nil, err
	}

	if err := env.Parse(conf); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// MustLoadConfig загружает конфигурацию из аргументов процесса. В случае ошибки вызывает panic.
func MustLoadConfig(args []string) *Config {
	conf, err := LoadConfig(args)
	if err != nil {
		panic(err)
	}
	return conf
}

func defaultConfig() *Config {
	return &Config{
		ServerAddress:   defaultServerAddress,
		BaseDomain:      defaultBaseDomain,
		SQLitePath:      defaultSQLitePath,
		MongoDatabase:   defaultMongoDatabase,
		ReadLimit:       defaultReadLimit,
		QRSize:          defaultQRSize,
		LogLevel:        defaultLogLevel,
		AppEnv:          defaultAppEnv,
		ShutdownTimeout: defaultShutdownTimeout,
	}
}

// loadFlags парсит флаги командной строки поверх значений по умолчанию.
func loadFlags(conf *Config, args []string) error {
	fSet := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fSet.StringVar(&conf.ServerAddress, "a", conf.ServerAddress, "Адрес сервера")
	fSet.StringVar(&conf.BaseDomain, "b", conf.BaseDomain, "Домен результирующего сокращенного URL")
	fSet.Func("s", "Тип хранилища: memory, sqlite, postgres, redis, mongo", func(s string) error {
		conf.Storage = StorageType(strings.ToLower(strings.TrimSpace(s)))
		return nil
	})
	fSet.StringVar(&conf.DatabaseDSN, "d", conf.DatabaseDSN, "DSN базы данных postgres")
	fSet.StringVar(&conf.SQLitePath, "sqlite", conf.SQLitePath, "Путь к файлу sqlite")
	fSet.StringVar(&conf.RedisAddr, "redis", conf.RedisAddr, "Адрес redis")
	fSet.StringVar(&conf.MongoURL, "mongo", conf.MongoURL, "URL подключения к mongodb")
	fSet.StringVar(&conf.LogLevel, "l", conf.LogLevel, "Уровень логирования")

	if err := fSet.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageTypeAuto, StorageTypeInMemory, StorageTypeSQLite,
		StorageTypePostgres, StorageTypeRedis, StorageTypeMongo:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown storage `%s`", c.Storage)
	}

	if strings.TrimSpace(c.BaseDomain) == "" {
		return errors.Wrap(ErrInvalidConfig, "base domain is empty")
	}
	if c.ReadLimit < 0 {
		return errors.Wrapf(ErrInvalidConfig, "read limit must not be negative: %d", c.ReadLimit)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "shutdown timeout must be positive: %s", c.ShutdownTimeout)
	}

	switch c.StorageType() {
	case StorageTypePostgres:
		if c.DatabaseDSN == "" {
			return errors.Wrap(ErrInvalidConfig, "postgres storage requires DATABASE_DSN")
		}
	case StorageTypeRedis:
		if c.RedisAddr == "" {
			return errors.Wrap(ErrInvalidConfig, "redis storage requires REDIS_ADDR")
		}
	case StorageTypeMongo:
		if c.MongoURL == "" {
			return errors.Wrap(ErrInvalidConfig, "mongo storage requires MONGO_URL")
		}
	}
	return nil
}
