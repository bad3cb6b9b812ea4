package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/fsdevblog/qrshort/internal/config"
	"github.com/fsdevblog/qrshort/internal/controllers"
	"github.com/fsdevblog/qrshort/internal/db"
	"github.com/fsdevblog/qrshort/internal/logs"
	"github.com/fsdevblog/qrshort/internal/services"
)

const (
	connectTimeout    = 10 * time.Second
	readTimeout       = 5 * time.Second
	readHeaderTimeout = 2 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 120 * time.Second
)

type App struct {
	config     config.Config
	conn       any
	dbServices *services.Services
	server     *http.Server
	Logger     *zap.Logger
}

// New создает логгер, подключение к хранилищу, сервисный слой и http сервер.
func New(conf config.Config) (*App, error) {
	logger, logErr := logs.New(func(o *logs.LoggerOptions) {
		o.Production = conf.IsProduction()
		o.Level = logs.LevelType(conf.LogLevel)
	})
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	conn, dbServices, servicesErr := initServices(ctx, conf, logger)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	router := controllers.SetupRouter(controllers.RouterParams{
		Shortener:   dbServices.Shortener,
		Resolver:    dbServices.Redirect,
		Inspector:   dbServices.Stats,
		PingService: dbServices.Ping,
		Logger:      logger,
		Release:     conf.IsProduction(),
	})

	return &App{
		config:     conf,
		conn:       conn,
		dbServices: dbServices,
		server: &http.Server{
			Addr:              conf.ServerAddress,
			Handler:           router,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		Logger: logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Handler возвращает http обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает web сервер и блокируется до отмены ctx или сигнала SIGINT/SIGTERM.
// После остановки сервера закрывает подключение к хранилищу.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	listener, listenErr := net.Listen("tcp", a.server.Addr)
	if listenErr != nil {
		a.closeStorage()
		return fmt.Errorf("listen %s: %w", a.server.Addr, listenErr)
	}
	return a.serve(ctx, listener)
}

func (a *App) serve(ctx context.Context, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	a.Logger.Info("server started", zap.String("addr", listener.Addr().String()))

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server shutdown error", zap.Error(err))
		if serverErr == nil {
			serverErr = fmt.Errorf("shutdown server: %w", err)
		}
	}

	a.closeStorage()
	_ = a.Logger.Sync()
	return serverErr
}

func (a *App) closeStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.ShutdownTimeout)
	defer cancel()

	if err := db.Close(ctx, a.conn); err != nil {
		a.Logger.Error("close storage error", zap.Error(err))
	}
}

// initServices создает подключение к хранилищу и возвращает сервисный слой приложения.
func initServices(
	ctx context.Context,
	appConf config.Config,
	logger *zap.Logger,
) (any, *services.Services, error) {
	storageType := whatIsDBStorageType(&appConf)
	logger.Info("connecting to storage", zap.String("storage", string(storageType)))

	dbConn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType:  storageType,
		PostgresDSN:  &appConf.DatabaseDSN,
		SqliteDBPath: &appConf.SQLitePath,
		Redis: &db.RedisConfig{
			Addr:     appConf.RedisAddr,
			Password: appConf.RedisPassword,
			DB:       appConf.RedisDB,
		},
		MongoURL:      &appConf.MongoURL,
		MongoDatabase: appConf.MongoDatabase,
		Logger:        logger,
	})
	if connErr != nil {
		return nil, nil, connErr //nolint:wrapcheck
	}

	dbServices, dbServErr := services.Factory(dbConn, services.ServiceType(storageType), services.Params{
		BaseDomain: appConf.BaseDomain,
		ReadLimit:  appConf.ReadLimit,
		QRSize:     appConf.QRSize,
		Logger:     logger,
	})
	if dbServErr != nil {
		_ = db.Close(ctx, dbConn)
		return nil, nil, dbServErr //nolint:wrapcheck
	}
	return dbConn, dbServices, nil
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	switch appConf.StorageType() {
	case config.StorageTypePostgres:
		return db.StorageTypePostgres
	case config.StorageTypeSQLite:
		return db.StorageTypeSQLite
	case config.StorageTypeRedis:
		return db.StorageTypeRedis
	case config.StorageTypeMongo:
		return db.StorageTypeMongo
	default:
		return db.StorageTypeInMemory
	}
}
