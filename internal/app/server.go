// internal/app/server.go
package app

import (
	"context"
	"fmt"

	"farepass-service/internal/config"
	"farepass-service/internal/db"
	authHandler "farepass-service/internal/handlers/auth"
	bookingHandler "farepass-service/internal/handlers/booking"
	contentHandler "farepass-service/internal/handlers/content"
	currencyHandler "farepass-service/internal/handlers/currency"
	customerHandler "farepass-service/internal/handlers/customer"
	dashboardHandler "farepass-service/internal/handlers/dashboard"
	documentHandler "farepass-service/internal/handlers/document"
	footerHandler "farepass-service/internal/handlers/footer"
	notifyH "farepass-service/internal/handlers/notification"
	planHandler "farepass-service/internal/handlers/plan"
	vendorHandler "farepass-service/internal/handlers/vendor"
	wsHandler "farepass-service/internal/handlers/websocket"
	"farepass-service/internal/jobs"
	"farepass-service/internal/middleware"
	"farepass-service/internal/pkg/jwt"
	"farepass-service/internal/pkg/session"
	"farepass-service/internal/repository/postgres"
	authUsecase "farepass-service/internal/service/auth"
	bookingUsecase "farepass-service/internal/service/booking"
	contentUsecase "farepass-service/internal/service/content"
	currencyUsecase "farepass-service/internal/service/currency"
	customersvc "farepass-service/internal/service/customer"
	dashboardUsecase "farepass-service/internal/service/dashboard"
	documentUsecase "farepass-service/internal/service/document"
	footerUsecase "farepass-service/internal/service/footer"
	notifyUsecase "farepass-service/internal/service/notification"
	planUsecase "farepass-service/internal/service/plan"
	"farepass-service/internal/service/storage"
	vendorUsecase "farepass-service/internal/service/vendor"
	"farepass-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
	cron   *cron.Cron
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectDB(ctx, s.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("redis connected", zap.String("addr", s.cfg.RedisAddr))

	// ----- JWT & Sessions -----
	jwtManager, err := jwt.NewManager(s.cfg.JWT)
	if err != nil {
		return fmt.Errorf("failed to build JWT manager: %w", err)
	}
	sessionManager := session.NewManager(redisClient)

	// ----- Repositories -----
	authRepo := postgres.NewAuthRepository(pool)
	bookingRepo := postgres.NewBookingRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	faqRepo := postgres.NewFAQRepository(pool)
	pageRepo := postgres.NewPageRepository(pool)
	footerRepo := postgres.NewFooterRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	rateRepo := postgres.NewRateRepository(pool)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(jwtManager, sessionManager, logger)
	go hub.Run(ctx)

	// ----- Storage -----
	uploader, err := storage.NewUploader(
		s.cfg.CloudinaryCloudName,
		s.cfg.CloudinaryAPIKey,
		s.cfg.CloudinaryAPISecret,
		s.cfg.CloudinaryFolder,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to init uploader: %w", err)
	}

	// ----- Services -----
	authService := authUsecase.NewAuthService(authRepo, jwtManager, sessionManager, logger)
	currencyService := currencyUsecase.NewCurrencyService(
		rateRepo,
		currencyUsecase.NewHTTPRateProvider(s.cfg.RatesURL),
		redisClient,
		logger,
	)
	notificationService := notifyUsecase.NewNotificationService(notificationRepo, hub, logger)
	bookingService := bookingUsecase.NewBookingService(bookingRepo, vendorRepo, notificationService, logger)
	customerService := customersvc.NewCustomerService(profileRepo, bookingRepo, currencyService, logger)
	vendorService := vendorUsecase.NewVendorService(vendorRepo, logger)
	planService := planUsecase.NewPlanService(planRepo, logger)
	contentService := contentUsecase.NewContentService(faqRepo, pageRepo, logger)
	footerService := footerUsecase.NewFooterService(footerRepo, logger)
	documentService := documentUsecase.NewDocumentService(documentRepo, profileRepo, uploader, notificationService, logger)
	dashboardService := dashboardUsecase.NewDashboardService(bookingRepo, documentRepo, customerService, currencyService, logger)

	// ----- Cron -----
	s.cron = cron.New()
	if err := jobs.InitCronJobs(s.cron, currencyService, logger); err != nil {
		return fmt.Errorf("failed to init cron jobs: %w", err)
	}

	// ----- Handlers -----
	handlers := &Handlers{
		AuthHandler:         authHandler.NewAuthHandler(authService),
		BookingHandler:      bookingHandler.NewBookingHandler(bookingService),
		CustomerHandler:     customerHandler.NewCustomerHandler(customerService),
		VendorHandler:       vendorHandler.NewVendorHandler(vendorService),
		PlanHandler:         planHandler.NewPlanHandler(planService),
		ContentHandler:      contentHandler.NewContentHandler(contentService),
		FooterHandler:       footerHandler.NewFooterHandler(footerService),
		DocumentHandler:     documentHandler.NewDocumentHandler(documentService),
		NotificationHandler: notifyH.NewNotificationHandler(notificationService),
		CurrencyHandler:     currencyHandler.NewCurrencyHandler(currencyService),
		DashboardHandler:    dashboardHandler.NewDashboardHandler(dashboardService),
		WSHandler:           wsHandler.NewWebSocketHandler(hub, logger),
		AuthMiddleware:      middleware.NewAuthMiddleware(authService),
	}

	// ----- Middlewares -----
	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		CORSMiddleware(s.cfg.AllowedOrigins),
	)

	SetupRouter(s.engine, handlers)

	logger.Info("server starting", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// Stop halts background work. The HTTP listener dies with the process.
func (s *Server) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
	if s.logger != nil {
		s.logger.Info("server stopping")
	}
}
