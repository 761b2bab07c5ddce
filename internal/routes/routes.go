package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/alma-scheduler/internal/alma"
	"github.com/BruksfildServices01/alma-scheduler/internal/audit"
	"github.com/BruksfildServices01/alma-scheduler/internal/config"
	"github.com/BruksfildServices01/alma-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/alma-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/alma-scheduler/internal/metrics"
	"github.com/BruksfildServices01/alma-scheduler/internal/middleware"
	"github.com/BruksfildServices01/alma-scheduler/internal/timezone"
	ucCalendar "github.com/BruksfildServices01/alma-scheduler/internal/usecase/calendar"
	ucLoan "github.com/BruksfildServices01/alma-scheduler/internal/usecase/loan"
	ucRequest "github.com/BruksfildServices01/alma-scheduler/internal/usecase/request"
)

// RegisterRoutes wires repositories, use cases and handlers onto r. The
// returned dispatcher must be closed on shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	almaClient *alma.Client,
	logger *zerolog.Logger,
) *audit.Dispatcher {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	calendarRepo := infraRepo.NewCalendarGormRepository(db)
	loanRepo := infraRepo.NewLoanGormRepository(db)
	requestRepo := infraRepo.NewRequestGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	loc := timezone.Location(cfg.Timezone)
	now := timezone.Clock(cfg.Timezone)

	// ======================================================
	// USE CASES: CALENDAR + REQUESTS
	// ======================================================
	buildCalendarUC := ucCalendar.NewBuildCalendar(
		calendarRepo,
		cfg.WindowDays(),
		now,
	)

	checkAvailabilityUC := ucRequest.NewCheckAvailability(
		requestRepo,
		ucRequest.NewAvailabilityChecker(almaClient),
		logger,
	)

	createReservationUC := ucRequest.NewCreateReservation(
		requestRepo,
		auditDispatcher,
	)

	deleteRequestUC := ucRequest.NewDeleteRequest(
		requestRepo,
		auditDispatcher,
	)

	listUserRequestsUC := ucRequest.NewListUserRequests(
		requestRepo,
		cfg.EmailDomain,
		cfg.UserRequestsHorizon,
		now,
	)

	// ======================================================
	// USE CASES: LOANS
	// ======================================================
	createLoanUC := ucLoan.NewCreateLoan(loanRepo, almaClient, auditDispatcher, logger, now)
	returnLoanUC := ucLoan.NewReturnLoan(loanRepo, almaClient, auditDispatcher, now)
	deleteLoanUC := ucLoan.NewDeleteLoan(loanRepo, almaClient, auditDispatcher)
	listOpenLoansUC := ucLoan.NewListOpenLoans(loanRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	calendarHandler := handlers.NewCalendarHandler(buildCalendarUC, now)
	availabilityHandler := handlers.NewAvailabilityHandler(checkAvailabilityUC, loc)
	requestHandler := handlers.NewRequestHandler(
		createReservationUC,
		deleteRequestUC,
		listUserRequestsUC,
		loc,
	)
	loanHandler := handlers.NewLoanHandler(
		createLoanUC,
		returnLoanUC,
		deleteLoanUC,
		listOpenLoansUC,
	)

	meHandler := handlers.NewMeHandler(db)
	bibHandler := handlers.NewBibHandler(db)
	userHandler := handlers.NewUserHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		metrics.Register()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// CALENDAR + AVAILABILITY
		// ------------------------------
		api.GET("/calendar", calendarHandler.Show)
		api.GET("/calendar.ics", calendarHandler.ICS)
		api.POST("/availability", availabilityHandler.Check)

		// ------------------------------
		// REQUESTS
		// ------------------------------
		api.GET("/requests/user", requestHandler.ListForUser)
		api.POST("/reservations", requestHandler.CreateReservation)
		api.DELETE("/requests/:id", requestHandler.Delete)

		// ------------------------------
		// LOANS
		// ------------------------------
		api.GET("/loans", loanHandler.ListOpen)
		api.POST("/loans", loanHandler.Create)
		api.PATCH("/loans/:id/return", loanHandler.Return)
		api.DELETE("/loans/:id", loanHandler.Delete)

		// ------------------------------
		// LOOKUPS
		// ------------------------------
		api.GET("/bibs", bibHandler.List)
		api.GET("/users", userHandler.List)

		api.GET("/audit-logs", middleware.RequireRole("admin"), auditLogsHandler.List)
	}

	return auditDispatcher
}
