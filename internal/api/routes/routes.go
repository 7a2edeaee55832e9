package routes

import (
	"rewards-recognition-backend/internal/api/handlers"
	"rewards-recognition-backend/internal/api/middleware"
	"rewards-recognition-backend/internal/auth"
	"rewards-recognition-backend/internal/config"
	"rewards-recognition-backend/internal/database/models"
	"rewards-recognition-backend/internal/notifier"
	"rewards-recognition-backend/internal/repository"
	"rewards-recognition-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	nominationRepo := repository.NewNominationRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	yearQuarterRepo := repository.NewYearQuarterRepository(db)

	// Mail delivery is optional; NewMailNotifier returns nil when SMTP is not
	// configured, and a nil *MailNotifier must not end up in a non-nil interface.
	var approvalNotifier service.Notifier
	if mailNotifier := notifier.NewMailNotifier(cfg); mailNotifier != nil {
		approvalNotifier = mailNotifier
	}

	// Initialize services
	nominationService := service.NewNominationService(
		nominationRepo,
		approvalRepo,
		userRepo,
		categoryRepo,
		yearQuarterRepo,
		approvalNotifier,
		validator,
		cfg.RequireManagerApprovalBeforeDirector,
	)
	dashboardService := service.NewDashboardService(
		nominationRepo,
		approvalRepo,
		teamRepo,
		userRepo,
		yearQuarterRepo,
		nominationService,
	)
	userService := service.NewUserService(userRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	yearQuarterService := service.NewYearQuarterService(yearQuarterRepo, validator)

	// Initialize auth
	authService := auth.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiryHours)
	authMiddleware := auth.NewAuthMiddleware(authService)
	authHandler := auth.NewAuthHandler(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	nominationHandler := handlers.NewNominationHandler(nominationService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	yearQuarterHandler := handlers.NewYearQuarterHandler(yearQuarterService)

	// Health check route
	router.GET("/health", healthHandler.Health)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Login is the only endpoint reachable without a token
	v1.POST("/auth/login", authHandler.Login)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())
	adminOnly := authMiddleware.RequireRole(models.RoleAdmin)

	{
		authenticated.GET("/auth/profile", authHandler.Profile)

		// Nomination routes
		nominations := authenticated.Group("/nominations")
		{
			nominations.POST("", nominationHandler.CreateNomination)
			nominations.GET("", nominationHandler.ListNominations)
			nominations.GET("/pending", nominationHandler.GetPendingNominations)
			nominations.GET("/drafts", nominationHandler.ListDrafts)
			nominations.GET("/drafts/latest", nominationHandler.GetLatestDraft)
			nominations.PUT("/drafts/:id", nominationHandler.UpdateDraft)
			nominations.GET("/:id", nominationHandler.GetNomination)
			nominations.GET("/:id/history", nominationHandler.GetNominationHistory)
			nominations.POST("/:id/review", nominationHandler.ReviewNomination)
			nominations.DELETE("/:id", nominationHandler.DeleteNomination)
		}

		// Dashboard routes
		dashboard := authenticated.Group("/dashboard")
		{
			dashboard.GET("/summary", dashboardHandler.GetSummary)
			dashboard.GET("/manager", dashboardHandler.GetManagerDashboard)
			dashboard.GET("/director", dashboardHandler.GetDirectorDashboard)
			dashboard.GET("/director/managers", dashboardHandler.GetDirectorManagers)
			dashboard.GET("/team-lead", dashboardHandler.GetTeamLeadDashboard)
			dashboard.GET("/employee", dashboardHandler.GetEmployeeDashboard)
			dashboard.GET("/teams/:id/nominations", dashboardHandler.GetTeamNominations)
			dashboard.GET("/orphaned", adminOnly, dashboardHandler.GetOrphanedNominations)
		}

		// User routes
		users := authenticated.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/unassigned", userHandler.GetUnassignedUsers)
			users.GET("/deleted", adminOnly, userHandler.GetDeletedUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("/me/password", userHandler.ChangePassword)
			users.POST("", adminOnly, userHandler.CreateUser)
			users.PUT("/:id", adminOnly, userHandler.UpdateUser)
			users.DELETE("/:id", adminOnly, userHandler.DeleteUser)
		}

		// Team routes
		teams := authenticated.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.GET("/deleted", adminOnly, teamHandler.GetDeletedTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("", adminOnly, teamHandler.CreateTeam)
			teams.PUT("/:id", adminOnly, teamHandler.UpdateTeam)
			teams.DELETE("/:id", adminOnly, teamHandler.DeleteTeam)
		}

		// Category routes
		categories := authenticated.Group("/categories")
		{
			categories.GET("", categoryHandler.GetAllCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", adminOnly, categoryHandler.CreateCategory)
			categories.PUT("/:id", adminOnly, categoryHandler.UpdateCategory)
			categories.DELETE("/:id", adminOnly, categoryHandler.DeleteCategory)
		}

		// Year quarter routes
		yearQuarters := authenticated.Group("/year-quarters")
		{
			yearQuarters.GET("", yearQuarterHandler.GetAllYearQuarters)
			yearQuarters.GET("/active", yearQuarterHandler.GetActiveYearQuarter)
			yearQuarters.GET("/:id", yearQuarterHandler.GetYearQuarter)
			yearQuarters.POST("", adminOnly, yearQuarterHandler.CreateYearQuarter)
			yearQuarters.POST("/:id/activate", adminOnly, yearQuarterHandler.ActivateYearQuarter)
			yearQuarters.DELETE("/:id", adminOnly, yearQuarterHandler.DeleteYearQuarter)
		}
	}

	return router
}
