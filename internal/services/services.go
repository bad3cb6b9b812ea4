package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/qr"
	"github.com/fsdevblog/qrshort/internal/repositories"
	"github.com/fsdevblog/qrshort/internal/repositories/memstore"
	"github.com/fsdevblog/qrshort/internal/repositories/mongostore"
	"github.com/fsdevblog/qrshort/internal/repositories/pgsql"
	"github.com/fsdevblog/qrshort/internal/repositories/redisstore"
	"github.com/fsdevblog/qrshort/internal/repositories/sql"
	"github.com/fsdevblog/qrshort/internal/shortcode"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ServiceType string

const (
	ServiceTypeInMemory ServiceType = ServiceType(db.StorageTypeInMemory)
	ServiceTypeSQLite   ServiceType = ServiceType(db.StorageTypeSQLite)
	ServiceTypePostgres ServiceType = ServiceType(db.StorageTypePostgres)
	ServiceTypeRedis    ServiceType = ServiceType(db.StorageTypeRedis)
	ServiceTypeMongo    ServiceType = ServiceType(db.StorageTypeMongo)
)

const DefaultBaseDomain = "domain.com"

// Params общие настройки сервисов. Нулевые поля заменяются значениями по умолчанию.
type Params struct {
	BaseDomain string // Домен короткой ссылки, без схемы
	ReadLimit  int    // Мягкий лимит списков
	QRSize     int    // Сторона QR-кода в пикселях
	Logger     *zap.Logger
}

func (p Params) withDefaults() Params {
	if p.BaseDomain == "" {
		p.BaseDomain = DefaultBaseDomain
	}
	if p.ReadLimit <= 0 {
		p.ReadLimit = repositories.DefaultReadLimit
	}
	if p.QRSize <= 0 {
		p.QRSize = qr.DefaultSize
	}
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	return p
}

type Services struct {
	Shortener *ShortenerService
	Redirect  *RedirectService
	Stats     *StatsService
	Ping      *PingService
}

// Factory собирает сервисы над соединением, созданным db.NewConnectionFactory.
//
// Параметры:
//   - conn: соединение с хранилищем, тип должен соответствовать sType
//   - sType: тип хранилища
//   - params: общие настройки сервисов
//
// Возвращает:
//   - *Services: набор сервисов
//   - error: ошибка при несоответствии типа соединения
func Factory(conn any, sType ServiceType, params Params) (*Services, error) {
	params = params.withDefaults()

	var (
		links  LinkRepository
		clicks ClickRepository
		pinger Pinger
	)

	switch sType {
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		links, clicks = memstore.NewLinkRepo(store), memstore.NewClickRepo(store)
		pinger = PingFunc(func(context.Context) error { return nil })
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		links, clicks = sql.NewLinkRepo(gormDB, params.Logger), sql.NewClickRepo(gormDB, params.Logger)
		pinger = PingFunc(func(ctx context.Context) error {
			sqlDB, err := gormDB.DB()
			if err != nil {
				return err //nolint:wrapcheck
			}
			return sqlDB.PingContext(ctx) //nolint:wrapcheck
		})
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		links, clicks = pgsql.NewLinkRepo(pool), pgsql.NewClickRepo(pool)
		pinger = pool
	case ServiceTypeRedis:
		client, ok := conn.(*redis.Client)
		if !ok {
			return nil, errors.New("invalid connection type. expected *redis.Client")
		}
		links, clicks = redisstore.NewLinkRepo(client), redisstore.NewClickRepo(client)
		pinger = PingFunc(func(ctx context.Context) error {
			return client.Ping(ctx).Err() //nolint:wrapcheck
		})
	case ServiceTypeMongo:
		mdb, ok := conn.(*mongo.Database)
		if !ok {
			return nil, errors.New("invalid connection type. expected *mongo.Database")
		}
		links, clicks = mongostore.NewLinkRepo(mdb), mongostore.NewClickRepo(mdb)
		pinger = PingFunc(func(ctx context.Context) error {
			return mdb.Client().Ping(ctx, nil) //nolint:wrapcheck
		})
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}

	encoder := qr.NewEncoder(params.QRSize, params.Logger)
	return &Services{
		Shortener: NewShortenerService(links, shortcode.New(), encoder, params),
		Redirect:  NewRedirectService(links, clicks, params.Logger),
		Stats:     NewStatsService(links, clicks, params),
		Ping:      NewPingService(pinger),
	}, nil
}
