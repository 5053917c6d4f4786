package router

import (
	"time"

	"jhris/internal/config"
	"jhris/internal/handler"
	"jhris/internal/middleware"
	"jhris/internal/repository"
	"jhris/internal/security"
	"jhris/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
// rdb may be nil; rate limits then count in process.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	if cfg.APIRateLimit > 0 {
		r.Use(middleware.RateLimit(middleware.NewLimiter(rdb, cfg.APIRateLimit, time.Minute), "api"))
	}

	// ── Security ─────────────────────────────────────────────────────────────
	credentials := security.NewCredentialStore(cfg.BcryptCost)
	tokens := security.NewTokenIssuer(cfg.SecretKey, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, credentials, tokens)
	userSvc := service.NewUserService(userRepo, credentials)
	departmentSvc := service.NewDepartmentService(departmentRepo, employeeRepo, service.DepartmentOptions{
		DeleteGuard: cfg.DepartmentDeleteGuard,
	})
	positionSvc := service.NewPositionService(positionRepo, departmentRepo)
	employeeSvc := service.NewEmployeeService(service.EmployeeRepos{
		Employees:   employeeRepo,
		Departments: departmentRepo,
		Positions:   positionRepo,
		Users:       userRepo,
	})
	reportSvc := service.NewReportService(employeeRepo, departmentRepo, positionRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, userSvc)
	usersH := handler.NewUsersHandler(userSvc)
	departmentsH := handler.NewDepartmentsHandler(departmentSvc)
	positionsH := handler.NewPositionsHandler(positionSvc)
	employeesH := handler.NewEmployeesHandler(employeeSvc)
	reportsH := handler.NewReportsHandler(reportSvc, cfg.AppName)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/", handler.Root(cfg.AppName, cfg.AppVersion))
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group(cfg.APIV1Prefix)

	// Auth (public). Refresh authenticates with the refresh token itself.
	auth := api.Group("/auth")
	{
		register := []gin.HandlerFunc{authH.Register}
		login := []gin.HandlerFunc{authH.Login}
		if cfg.LoginRateLimit > 0 {
			limit := middleware.RateLimit(middleware.NewLimiter(rdb, cfg.LoginRateLimit, time.Minute), "login")
			register = append([]gin.HandlerFunc{limit}, register...)
			login = append([]gin.HandlerFunc{limit}, login...)
		}
		auth.POST("/register", register...)
		auth.POST("/login", login...)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	v1 := api.Group("", middleware.BearerAuth(authSvc))
	{
		v1.GET("/auth/me", authH.Me)

		users := v1.Group("/users")
		{
			users.GET("/me", authH.Me)
			users.GET("/:id", usersH.Get)
			users.GET("/", middleware.RequireSuperuser(), usersH.List)
			users.PATCH("/:id", middleware.RequireSuperuser(), usersH.Update)
		}

		departments := v1.Group("/departments")
		{
			departments.GET("/", departmentsH.List)
			departments.POST("/", departmentsH.Create)
			departments.GET("/:id", departmentsH.Get)
			departments.PUT("/:id", departmentsH.Update)
			departments.DELETE("/:id", departmentsH.Delete)
			departments.GET("/:id/employees", departmentsH.Employees)
		}

		positions := v1.Group("/positions")
		{
			positions.GET("/", positionsH.List)
			positions.POST("/", positionsH.Create)
			positions.GET("/:id", positionsH.Get)
			positions.PUT("/:id", positionsH.Update)
			positions.DELETE("/:id", positionsH.Delete)
		}

		employees := v1.Group("/employees")
		{
			employees.GET("/", employeesH.List)
			employees.POST("/", employeesH.Create)
			employees.GET("/:id", employeesH.Get)
			employees.PUT("/:id", employeesH.Update)
			employees.DELETE("/:id", employeesH.Delete)
			employees.GET("/:id/subordinates", employeesH.Subordinates)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/headcount", reportsH.Headcount)
			reports.GET("/headcount/pdf", reportsH.HeadcountPDF)
			reports.GET("/employees/xlsx", reportsH.EmployeesXLSX)
		}
	}

	// Swagger UI, outside production only
	if !cfg.IsProduction() {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
