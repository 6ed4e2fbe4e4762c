package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffdesk/employee-task-api/internal/api/handler"
	"github.com/staffdesk/employee-task-api/internal/api/middleware"
	"github.com/staffdesk/employee-task-api/internal/core/domain"
	"github.com/staffdesk/employee-task-api/internal/core/service"
	"github.com/staffdesk/employee-task-api/internal/infrastructure/config"
	mongodb "github.com/staffdesk/employee-task-api/internal/infrastructure/db/mongo"
	redisdb "github.com/staffdesk/employee-task-api/internal/infrastructure/db/redis"
)

// NewRouter builds the Echo instance with all routes registered.
//
// Read endpoints (list/get employees and tasks) are public. Mutations require
// authentication (JWT bearer or API key) plus the permission policy check for
// the specific operation.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("taskapi"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	resolver := service.NewAuthzService(tokenService, denylist, cfg.APIKey)
	authService := service.NewAuthService(userRepo, tokenService, denylist, log)
	employeeService := service.NewEmployeeService(employeeRepo, taskRepo, log)
	taskService := service.NewTaskService(taskRepo, employeeRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	taskHandler := handler.NewTaskHandler(taskService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authn := middleware.Authenticate(resolver)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authn)
	auth.GET("/me", authHandler.Me, authn)
	auth.GET("/verify-token", authHandler.VerifyToken, authn)
	auth.POST("/create-admin", authHandler.CreateAdmin, authn, middleware.Require(domain.OpCreateAdmin))
	auth.GET("/users", authHandler.ListUsers, authn, middleware.Require(domain.OpListUsers))

	// --- Employee routes ---
	employees := e.Group("/v1/employees")
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.Get)
	employees.POST("", employeeHandler.Create, authn, middleware.Require(domain.OpCreateEmployee))
	employees.PUT("/:id", employeeHandler.Update, authn, middleware.Require(domain.OpUpdateEmployee))
	employees.DELETE("/:id", employeeHandler.Delete, authn, middleware.Require(domain.OpDeleteEmployee))

	// --- Task routes ---
	tasks := e.Group("/v1/tasks")
	tasks.GET("", taskHandler.List)
	tasks.GET("/:id", taskHandler.Get)
	tasks.POST("", taskHandler.Create, authn, middleware.Require(domain.OpCreateTask))
	tasks.PUT("/:id", taskHandler.Update, authn, middleware.Require(domain.OpUpdateTask))
	tasks.DELETE("/:id", taskHandler.Delete, authn, middleware.Require(domain.OpDeleteTask))
	tasks.POST("/:id/assign/:employee_id", taskHandler.Assign, authn, middleware.Require(domain.OpAssignTask))
	tasks.POST("/:id/unassign", taskHandler.Unassign, authn, middleware.Require(domain.OpAssignTask))

	// --- Ops surface ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
