package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/redisstore"
	"fulfillment/internal/adapters/out/remoteapi"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/generated/docs"
	"fulfillment/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	logger := newLogger(configs.LogLevel)

	gormDB, err := gorm.Open(gormpostgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	remote, err := remoteapi.NewClient(configs.RemoteAPIBaseURL, configs.RemoteAPITimeout)
	if err != nil {
		log.Fatalf("Failed to create order service client: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, remote, newStatsStore(configs, logger), logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	if err = docs.Register(context.Background()); err != nil {
		log.Fatalf("Failed to register API docs: %v", err)
	}

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT", "8080"),
		LogLevel:         goDotEnvVariable("LOG_LEVEL", "info"),
		DBHost:           goDotEnvVariable("DB_HOST", "localhost"),
		DBPort:           goDotEnvVariable("DB_PORT", "5432"),
		DBUser:           goDotEnvVariable("DB_USER", ""),
		DBPassword:       goDotEnvVariable("DB_PASSWORD", ""),
		DBName:           goDotEnvVariable("DB_NAME", ""),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE", "disable"),
		RemoteAPIBaseURL: goDotEnvVariable("REMOTE_API_BASE_URL", ""),
		RemoteAPITimeout: durationVariable("REMOTE_API_TIMEOUT", remoteapi.DefaultTimeout),
		ProductionLine:   goDotEnvVariable("PRODUCTION_LINE", ""),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR", ""),
		RedisPassword:    goDotEnvVariable("REDIS_PASSWORD", ""),
		RedisDB:          intVariable("REDIS_DB", 0),
		StatsSchedule:    goDotEnvVariable("STATS_SCHEDULE", ""),
		StatsTimeout:     durationVariable("STATS_TIMEOUT", 30*time.Second),
		CompanyName:      goDotEnvVariable("COMPANY_NAME", ""),
		CompanyAddress:   goDotEnvVariable("COMPANY_ADDRESS", ""),
		CompanyEmail:     goDotEnvVariable("COMPANY_EMAIL", ""),
		CompanyPhone:     goDotEnvVariable("COMPANY_PHONE", ""),
	}
	return config
}

func goDotEnvVariable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationVariable(key string, fallback time.Duration) time.Duration {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}

func intVariable(key string, fallback int) int {
	raw := goDotEnvVariable(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return n
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

// newStatsStore keeps the stats snapshot in Redis when REDIS_ADDR is set.
func newStatsStore(configs cmd.Config, logger *slog.Logger) ports.StatsStore {
	if configs.RedisAddr == "" {
		logger.Info("Stats snapshot kept in memory")
		return memstore.NewStatsStore()
	}
	store, err := redisstore.NewStatsStore(configs.RedisAddr, configs.RedisPassword, configs.RedisDB)
	if err != nil {
		log.Fatalf("Failed to create stats store: %v", err)
	}
	return store
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				logger.LogAttrs(c.Request().Context(), slog.LevelError, "request failed", attrs...)
				return nil
			}
			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	servers.RegisterHandlersWithBaseURL(e, app.CreateServer(), "/api/v1")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Error(err)
	}
}
