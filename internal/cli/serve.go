package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	computeOverlapHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/compute_overlap"
	deleteFreeTimeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_free_time"
	findOverlapHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/find_overlap"
	getFreeTimeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_free_time"
	getProjectSettingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_project_settings"
	setFreeTimeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/set_free_time"
	updateProjectSettingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_project_settings"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	freeTimeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/freetime"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	projectServiceClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/projectservice"
	freeTimeService "github.com/m04kA/SMC-SchedulingService/internal/service/freetime"
	settingsService "github.com/m04kA/SMC-SchedulingService/internal/service/settings"
	computeOverlapUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/compute_overlap"
	findOverlapUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/find_overlap"
	setFreeTimeUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/set_free_time"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func NewServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "path to config file")
	return cmd
}

func serve(configPath string) error {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	log.Debug("Database pool: max_open=%d, max_idle=%d, max_lifetime=%ds",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем метрики и репозитории (с метриками или без)
	var (
		metricsCollector *metrics.Metrics
		executor         dbmetrics.DBExecutor          = db
		observer         findOverlapUC.OverlapObserver = findOverlapUC.NopObserver{}
	)
	txMgr := txmanager.NewForSQL(db)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		observer = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	freeTimeRepository := freeTimeRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Инициализируем интеграционных клиентов
	projectClient := projectServiceClient.NewClient(
		cfg.ProjectService.URL,
		time.Duration(cfg.ProjectService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ProjectService=%s timeout=%ds)",
		cfg.ProjectService.URL, cfg.ProjectService.Timeout)

	// Инициализируем сервисы
	freeTimeSvc := freeTimeService.NewService(freeTimeRepository, log)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		projectClient,
		cfg.Scheduling.DefaultMinDurationMinutes,
		log,
	)

	// Инициализируем use cases
	findOverlapUseCase := findOverlapUC.NewUseCase(
		freeTimeRepository,
		settingsRepository,
		projectClient,
		observer,
		cfg.Scheduling.DefaultMinDurationMinutes,
		log,
	)
	computeOverlapUseCase := computeOverlapUC.NewUseCase(observer, log)
	setFreeTimeUseCase := setFreeTimeUC.NewUseCase(freeTimeRepository, txMgr, log)

	// Инициализируем handlers
	computeOverlap := computeOverlapHandler.NewHandler(computeOverlapUseCase, log)
	findOverlap := findOverlapHandler.NewHandler(findOverlapUseCase, log)
	setFreeTime := setFreeTimeHandler.NewHandler(setFreeTimeUseCase, log)
	getFreeTime := getFreeTimeHandler.NewHandler(freeTimeSvc, log)
	deleteFreeTime := deleteFreeTimeHandler.NewHandler(freeTimeSvc, log)
	getProjectSettings := getProjectSettingsHandler.NewHandler(settingsSvc, log)
	updateProjectSettings := updateProjectSettingsHandler.NewHandler(settingsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Пересечение по переданным спискам, без обращения к хранилищу
	api.HandleFunc("/overlap", computeOverlap.Handle).Methods(http.MethodPost)

	// Настройки планирования проекта
	api.HandleFunc("/projects/{projectId}/settings", getProjectSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Общее свободное время проекта ---
	protected.HandleFunc("/projects/{projectId}/overlap", findOverlap.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/projects/{projectId}/settings", updateProjectSettings.Handle).Methods(http.MethodPut)

	// --- Свободное время участника ---
	protected.HandleFunc("/users/{userId}/free-time", getFreeTime.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/free-time", setFreeTime.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/{userId}/free-time", deleteFreeTime.Handle).Methods(http.MethodDelete)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		close(stopMetricsCh)
		return fmt.Errorf("server failed: %w", err)
	}

	log.Info("Shutting down server...")
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
