package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classpoint/sis-backend/internal/config"
	"github.com/classpoint/sis-backend/internal/database"
	"github.com/classpoint/sis-backend/internal/handler"
	"github.com/classpoint/sis-backend/internal/logger"
	"github.com/classpoint/sis-backend/internal/repository"
	"github.com/classpoint/sis-backend/internal/router"
	"github.com/classpoint/sis-backend/internal/service"
	"github.com/classpoint/sis-backend/internal/validator"
	"github.com/classpoint/sis-backend/internal/websocket"
	"github.com/classpoint/sis-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ClassPoint SIS Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	departmentRepo := repository.NewDepartmentRepository(pool)
	subjectRepo := repository.NewSubjectRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	teacherRepo := repository.NewTeacherRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	roleRepo := repository.NewRoleRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	catalogService := service.NewCatalogService(cfg, subjectRepo, sectionRepo, teacherRepo, rdb, log)
	departmentService := service.NewDepartmentService(departmentRepo, catalogService)
	subjectService := service.NewSubjectService(subjectRepo, catalogService)
	sectionService := service.NewSectionService(sectionRepo, catalogService)
	teacherService := service.NewTeacherService(teacherRepo, catalogService)
	studentService := service.NewStudentService(studentRepo)
	classService := service.NewClassService(classRepo, subjectRepo, catalogService, log)
	adminService := service.NewAdminService(adminRepo, roleRepo, authService, log)
	adminUserService := service.NewAdminUserService(adminRepo, roleRepo, authService)
	dashboardService := service.NewDashboardService(dashboardRepo)

	// ─── Wire Event Sinks ─────────────────────────────────────────────
	// Committed class and roster changes fan out to the console stream
	// and the audit queue. Both sinks are fire-and-forget.
	hub := websocket.NewHub(log)
	auditPublisher := worker.NewAuditPublisher(rdb, log)
	classService.AddSink(hub)
	classService.AddSink(auditPublisher)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(adminService),
		Department: handler.NewDepartmentHandler(departmentService, catalogService),
		Subject:    handler.NewSubjectHandler(subjectService),
		Section:    handler.NewSectionHandler(sectionService),
		Teacher:    handler.NewTeacherHandler(teacherService),
		Student:    handler.NewStudentHandler(studentService),
		Class:      handler.NewClassHandler(classService),
		AdminUser:  handler.NewAdminUserHandler(adminUserService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		WS:         handler.NewWSHandler(hub, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	auditWorker := worker.NewAuditWorker(pool, rdb, log)
	go auditWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for the audit queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
