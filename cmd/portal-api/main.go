package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/campus-portal-api/api/swagger"
	"github.com/noah-isme/campus-portal-api/internal/handler"
	internalmiddleware "github.com/noah-isme/campus-portal-api/internal/middleware"
	"github.com/noah-isme/campus-portal-api/internal/repository"
	"github.com/noah-isme/campus-portal-api/internal/service"
	"github.com/noah-isme/campus-portal-api/pkg/cache"
	"github.com/noah-isme/campus-portal-api/pkg/config"
	"github.com/noah-isme/campus-portal-api/pkg/database"
	"github.com/noah-isme/campus-portal-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/campus-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/campus-portal-api/pkg/middleware/requestid"
)

// @title Campus Portal API
// @version 1.0.0
// @description Role-based academic portal for students and teachers
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := service.NewMetricsService()

	dataset, err := loadDataset(ctx, cfg, metrics, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to load academic data", "source", cfg.DataSource, "error", err)
	}
	for _, issue := range repository.CheckIntegrity(dataset) {
		logr.Warn("academic data integrity", zap.String("issue", issue.String()))
	}
	store := repository.NewAcademicRepository(dataset)

	cacheSvc := newCache(ctx, cfg, metrics, logr)

	acks := service.NewAckService(service.AckConfig{
		Delay:     cfg.Acks.Delay,
		Workers:   cfg.Acks.Workers,
		Retention: cfg.Acks.Retention,
	}, metrics, logr)
	acks.Start(ctx)
	defer acks.Stop()

	validate := validator.New()
	authSvc := service.NewAuthService(store, validate, logr, service.AuthConfig{
		Secret: cfg.JWT.Secret,
		Expiry: cfg.JWT.Expiration,
		Issuer: cfg.JWT.Issuer,
	})
	records := service.NewRecordService(store, cacheSvc, cfg.Cache.TTL, logr)
	grades := service.NewGradeService(store, acks, validate, logr)

	var exports *service.ExportService
	if cfg.Exports.Enabled {
		exports = service.NewExportService(records, logr, nil, nil)
	}

	routes := handler.Routes{
		Auth:    handler.NewAuthHandler(authSvc),
		Acks:    handler.NewAckHandler(acks),
		Student: handler.NewStudentHandler(service.NewCatalogService(store, acks, logr), grades, records, exports),
		Teacher: handler.NewTeacherHandler(
			service.NewCourseService(store, acks, validate, logr),
			grades,
			service.NewScheduleService(store, cacheSvc, cfg.Cache.TTL, logr),
		),
		Metrics: handler.NewMetricsHandler(metrics, cfg.DataSource),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr, "/health", "/ready", "/metrics"))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if cfg.Metrics.Enabled {
		r.Use(internalmiddleware.Metrics(metrics))
	}

	handler.Register(r, handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		MetricsEnabled: cfg.Metrics.Enabled,
		ExportsEnabled: cfg.Exports.Enabled,
	}, authSvc, routes)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "data_source", cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("graceful shutdown failed", "error", err)
	}
}

func loadDataset(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) (repository.Dataset, error) {
	start := time.Now()
	if cfg.DataSource != config.DataSourcePostgres {
		data := repository.SeedDataset()
		metrics.ObserveSnapshotLoad(config.DataSourceStatic, time.Since(start))
		return data, nil
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return repository.Dataset{}, err
	}
	defer db.Close() //nolint:errcheck

	data, err := repository.NewSnapshotRepository(db).Load(ctx)
	if err != nil {
		return repository.Dataset{}, err
	}
	metrics.ObserveSnapshotLoad(config.DataSourcePostgres, time.Since(start))
	logr.Sugar().Infow("academic snapshot loaded",
		"users", len(data.Users),
		"courses", len(data.Courses),
		"enrollments", len(data.Enrollments),
	)
	return data, nil
}

// newCache returns nil when caching is disabled or Redis is unreachable; the
// services then read straight from the store.
func newCache(ctx context.Context, cfg *config.Config, metrics *service.MetricsService, logr *zap.Logger) *service.CacheService {
	if !cfg.Cache.Enabled {
		return nil
	}
	client, err := cache.NewRedis(ctx, cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		return nil
	}
	repo := repository.NewCacheRepository(client, "campus-portal")
	return service.NewCacheService(repo, metrics, cfg.Cache.TTL, logr, true)
}
