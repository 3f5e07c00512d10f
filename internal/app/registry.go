package app

import (
	"context"
	"database/sql"
	"time"

	"hrms-backend/internal/attendance"
	"hrms-backend/internal/audit"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/config"
	"hrms-backend/internal/dashboard"
	"hrms-backend/internal/department"
	"hrms-backend/internal/employee"
	"hrms-backend/internal/leave"
	"hrms-backend/internal/lifecycle"
	"hrms-backend/internal/messaging/kafka"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/rbac"
	"hrms-backend/internal/rbac/rbac_http"
	"hrms-backend/internal/shared/connection"
	"hrms-backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (func(), error) {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer(rbac.Policy)
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(enforcer, rbac.Policy, logger)

	recorder := lifecycle.NewRecorder(db, outboxRepo, logger).WithTopic(cfg.Kafka.LifecycleTopic)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// --- Services ---
	authService := auth.NewService(userRepo, tokens, logger)
	userService := user.NewService(userRepo, recorder, logger)
	employeeService := employee.NewService(employeeRepo, recorder, logger)
	departmentService := department.NewService(departmentRepo, recorder, logger)
	attendanceService := attendance.NewService(attendanceRepo, recorder, attendance.Options{
		LateAfter: cfg.LateAfter(),
	}, logger)
	leaveService := leave.NewService(leaveRepo, recorder, logger)
	dashboardService := dashboard.NewService(dashboardRepo, dashboard.Options{}, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieOptions{
		Secure: cfg.IsProduction(),
		MaxAge: cfg.Auth.TokenTTL,
	}, logger)
	userHandler := user.NewHandler(userService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	authenticate := middleware.Authenticate(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler, rbacService, authenticate, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, authenticate, rdb, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, authenticate, rdb, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, authenticate, rdb, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authenticate, rdb, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, authenticate, logger)
		rbac_http.RegisterRoutes(api, rbacHandler, rbacService, authenticate)
	}

	// The audit trail lives in Mongo; without it the read API is left out.
	noop := func() {}
	if cfg.Mongo.URI == "" {
		return noop, nil
	}
	client, err := connection.ConnectMongoWithRetry(cfg.Mongo.URI, 1)
	if err != nil {
		logger.Warn("mongo unavailable, audit-logs endpoint disabled", zap.Error(err))
		return noop, nil
	}
	auditRepo := audit.NewRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection))
	audit.RegisterRoutes(api, audit.NewHandler(audit.NewService(auditRepo, logger), logger), rbacService, authenticate, logger)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}, nil
}
