package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	dbadapter "todolist/internal/adapter/db"
	httpadapter "todolist/internal/adapter/http"
	"todolist/internal/adapter/http/handlers"
	httpmiddleware "todolist/internal/adapter/http/middleware"
	"todolist/internal/adapter/password"
	"todolist/internal/adapter/session"
	"todolist/internal/app/service"
	"todolist/internal/config"
	"todolist/internal/core/ports"
	"todolist/pkg/logger"
	"todolist/pkg/translator"
)

type sessionStore interface {
	ports.SessionStore
	Close() error
}

func main() {
	cfg := config.LoadConfig()

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(log)

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationDir,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	if cfg.DbAutoMigrate {
		if err := dbadapter.Migrate(context.Background(), db); err != nil {
			log.Fatal("failed to migrate database schema", zap.Error(err))
		}
	}

	sessions := newSessionStore(cfg, log)

	taskService := service.NewTaskService(dbadapter.NewTaskRepository(db), service.SystemClock{})
	authService := service.NewAuthService(
		dbadapter.NewUserRepository(db),
		password.NewBcryptHasher(cfg.BcryptCost),
		sessions,
		service.SystemClock{},
		cfg.SessionTTL,
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := httpmiddleware.NewMetrics(registry)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(log), metrics.Middleware())

	httpadapter.RegisterRoutes(
		r,
		handlers.NewHealthHandler(db, sessions),
		handlers.NewAuthHandler(authService, handlers.CookieConfig{
			Name:   cfg.SessionCookie,
			MaxAge: cfg.SessionTTL,
			Secure: cfg.IsProduction(),
		}),
		handlers.NewTaskHandler(taskService),
		httpmiddleware.RequireAuth(authService, cfg.SessionCookie),
	)
	httpadapter.RegisterMetricsRoute(r, gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	srv := &http.Server{
		Addr:         ":" + cfg.AppPort,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", cfg.DbDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("could not start server", zap.Error(err))
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": func(ctx context.Context) error {
				return srv.Shutdown(ctx)
			},
			"database": func(ctx context.Context) error {
				return db.Close()
			},
			"sessions": func(ctx context.Context) error {
				return sessions.Close()
			},
		},
	)

	exitCode := <-wait
	log.Info("server stopped", zap.Int("exit_code", exitCode))
	if err := log.Sync(); err != nil {
		zap.L().Debug("failed to sync logger", zap.Error(err))
	}
	os.Exit(exitCode)
}

func newSessionStore(cfg *config.Config, log *zap.Logger) sessionStore {
	switch cfg.SessionStore {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Fatal("failed to connect to redis", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(client, session.DefaultKeyPrefix)
	default:
		log.Info("using in-memory session store", zap.Duration("prune_interval", cfg.SessionPrune))
		return session.NewMemoryStore(cfg.SessionPrune)
	}
}
