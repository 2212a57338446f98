package router

import (
	"net/http"
	"time"

	"github.com/campneus/auditoria-campneus/internal/apierror"
	"github.com/campneus/auditoria-campneus/internal/config"
	"github.com/campneus/auditoria-campneus/internal/handler"
	"github.com/campneus/auditoria-campneus/internal/infra"
	"github.com/campneus/auditoria-campneus/internal/middleware"
	"github.com/campneus/auditoria-campneus/internal/model"
	"github.com/campneus/auditoria-campneus/internal/repository"
	"github.com/campneus/auditoria-campneus/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	branchSvc := service.NewBranchService(branchRepo, auditRepo, scheduleRepo)
	auditSvc := service.NewAuditService(auditRepo)
	scheduleSvc := service.NewScheduleService(scheduleRepo)
	dashboardSvc := service.NewDashboardService(reportRepo)
	reportSvc := service.NewReportService(reportRepo)

	// A typed nil *infra.Mailer must not become a non-nil service.Mailer.
	var m service.Mailer
	if mailer != nil {
		m = mailer
	}
	userSvc := service.NewUserService(userRepo, auditRepo, m)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	branchesH := handler.NewBranchesHandler(branchSvc)
	auditsH := handler.NewAuditsHandler(auditSvc)
	schedulesH := handler.NewSchedulesHandler(scheduleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	reportsH := handler.NewReportsHandler(reportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	api := r.Group("/api")

	// Auth (login public, verify authenticated)
	api.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	jwtMW := middleware.JWTAuth(cfg.JWTSecret, userRepo)
	adminOnly := middleware.RequireRole(model.RoleAdministrator)

	protected := api.Group("", jwtMW)
	{
		protected.GET("/auth/verify", authH.Verify)

		users := protected.Group("/users", adminOnly)
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}

		// Branches — any authenticated user can read, writes are admin only
		protected.GET("/branches", branchesH.List)
		protected.GET("/branches/:id", branchesH.GetByID)
		protected.POST("/branches", adminOnly, branchesH.Create)
		protected.PUT("/branches/:id", adminOnly, branchesH.Update)
		protected.DELETE("/branches/:id", adminOnly, branchesH.Delete)

		// Audits — any authenticated user creates as themselves; the service
		// enforces owner-or-admin on update; delete is admin only
		audits := protected.Group("/audits")
		{
			audits.POST("", auditsH.Create)
			audits.GET("", auditsH.List)
			audits.GET("/:id", auditsH.GetByID)
			audits.PUT("/:id", auditsH.Update)
			audits.DELETE("/:id", adminOnly, auditsH.Delete)
		}

		schedules := protected.Group("/schedules")
		{
			schedules.POST("", schedulesH.Create)
			schedules.GET("", schedulesH.List)
			schedules.GET("/:id", schedulesH.GetByID)
			schedules.PUT("/:id", schedulesH.Update)
			schedules.DELETE("/:id", schedulesH.Delete)
		}

		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("", dashboardH.Overview)
			dashboard.GET("/charts/monthly-scores", dashboardH.MonthlyScores)
			dashboard.GET("/charts/summary-distribution", dashboardH.SummaryDistribution)
		}

		reports := protected.Group("/reports")
		{
			reports.GET("/last-visit-by-branch", reportsH.LastVisitByBranch)
			reports.GET("/last-visit-by-branch/pdf", reportsH.LastVisitByBranchPDF)
			reports.GET("/branches-to-audit", reportsH.BranchesToAudit)
			reports.GET("/audits-by-period", reportsH.AuditsByPeriod)
			reports.GET("/auditor-performance", reportsH.AuditorPerformance)
			reports.GET("/scores-by-state", reportsH.ScoresByState)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("rota não encontrada"))
	})

	return r
}
