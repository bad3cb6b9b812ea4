package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type StorageType string

const (
	StorageTypeInMemory StorageType = "memory"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypePostgres StorageType = "postgres"
	StorageTypeRedis    StorageType = "redis"
	StorageTypeMongo    StorageType = "mongo"
)

var ErrUnknownStorage = errors.New("unknown storage type")

type FactoryConfig struct {
	StorageType   StorageType
	PostgresDSN   *string
	SqliteDBPath  *string
	Redis         *RedisConfig
	MongoURL      *string
	MongoDatabase string
	Logger        *zap.Logger
}

// NewConnectionFactory создает подключение к хранилищу указанного типа и подготавливает схему.
//
// Возвращает:
//   - any: *MemoryStorage, *gorm.DB, *pgxpool.Pool, *redis.Client или *mongo.Database
//   - error: ошибка подключения или миграции
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		if err := migrations.Up(*config.PostgresDSN, logger); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		pool, err := NewPostgresConnection(ctx, *config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		return pool, nil
	case StorageTypeSQLite:
		if config.SqliteDBPath == nil || *config.SqliteDBPath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		return NewSQLite(*config.SqliteDBPath)
	case StorageTypeRedis:
		if config.Redis == nil || config.Redis.Addr == "" {
			return nil, errors.New("redis address is empty")
		}
		return NewRedisClient(ctx, *config.Redis)
	case StorageTypeMongo:
		if config.MongoURL == nil || *config.MongoURL == "" {
			return nil, errors.New("mongo url is empty")
		}
		return NewMongoDatabase(ctx, *config.MongoURL, config.MongoDatabase)
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStorage, config.StorageType)
	}
}

// Close закрывает соединение, созданное NewConnectionFactory.
func Close(ctx context.Context, conn any) error {
	switch c := conn.(type) {
	case *pgxpool.Pool:
		c.Close()
		return nil
	case *gorm.DB:
		sqlDB, err := c.DB()
		if err != nil {
			return fmt.Errorf("get sql db: %w", err)
		}
		return sqlDB.Close() //nolint:wrapcheck
	case *redis.Client:
		return c.Close() //nolint:wrapcheck
	case *mongo.Database:
		return c.Client().Disconnect(ctx) //nolint:wrapcheck
	case *MemoryStorage:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownStorage, conn)
	}
}
