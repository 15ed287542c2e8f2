package apiapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/smediamanagement84-star/ModelApp/internal/config"
	"github.com/smediamanagement84-star/ModelApp/internal/infra/s3"
	pgrepo "github.com/smediamanagement84-star/ModelApp/internal/repo/postgres"
	redisrepo "github.com/smediamanagement84-star/ModelApp/internal/repo/redis"
	"github.com/smediamanagement84-star/ModelApp/internal/services/auth"
	"github.com/smediamanagement84-star/ModelApp/internal/services/bookings"
	"github.com/smediamanagement84-star/ModelApp/internal/services/catalog"
	"github.com/smediamanagement84-star/ModelApp/internal/services/discovery"
	"github.com/smediamanagement84-star/ModelApp/internal/services/media"
	"github.com/smediamanagement84-star/ModelApp/internal/services/payments"
	"github.com/smediamanagement84-star/ModelApp/internal/services/unlocks"
)

// App owns the wired service graph and the HTTP server. Redis and S3
// are optional: without them the app runs degraded (no unlock cache,
// no portfolio URLs) but still serves discovery and payments.
type App struct {
	cfg config.Config
	log *zap.Logger

	authService      *auth.Service
	discoveryService *discovery.Service
	unlockService    *unlocks.Service
	paymentService   *payments.Service
	bookingService   *bookings.Service

	server *http.Server
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	pool, err := pgrepo.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	var redisClient *goredis.Client
	redisClient, err = redisrepo.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	talentRepo := pgrepo.NewTalentRepo(pool)
	unlockRepo := pgrepo.NewUnlockRepo(pool)
	bookingRepo := pgrepo.NewBookingRepo(pool)
	viewerRepo := pgrepo.NewViewerRepo(pool)
	sessionRepo := redisrepo.NewSessionRepo(redisClient, cfg.Auth.SessionTTL)
	unlockCache := redisrepo.NewUnlockCacheRepo(redisClient, cfg.Auth.SessionTTL)

	unlockService := unlocks.NewService(unlockRepo, log)
	unlockService.AttachCache(unlockCache)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	authService := auth.NewService(viewerRepo, sessionRepo, jwtManager, log)
	authService.AttachUnlockWarmer(unlockService)

	catalogService := catalog.NewService(talentRepo, catalog.Config{
		AgeMin:       cfg.Catalog.AgeMin,
		AgeMax:       cfg.Catalog.AgeMax,
		FetchTimeout: cfg.Catalog.FetchTimeout,
	}, log)

	discoveryService := discovery.NewService(catalogService, unlockService, log)

	if cfg.S3.Endpoint != "" {
		s3Client, err := s3.NewClient(s3.Config{
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			UseSSL:    cfg.S3.UseSSL,
		})
		if err != nil {
			log.Warn("s3 unavailable, portfolios will stay hidden", zap.Error(err))
		} else {
			mediaService := media.NewService(s3Client, media.Config{
				Bucket: cfg.S3.Bucket,
				URLTTL: cfg.Catalog.PortfolioTTL,
			}, log)
			if err := mediaService.EnsureBucket(ctx); err != nil {
				log.Warn("portfolio bucket check failed", zap.Error(err))
			}
			discoveryService.AttachPresigner(mediaService)
		}
	}

	gateway := &payments.SimulatedGateway{Latency: cfg.Payments.GatewayLatency}
	paymentService := payments.NewService(catalogService, unlockService, gateway, payments.Config{
		Currency:       cfg.Payments.Currency,
		AttemptTTL:     cfg.Payments.AttemptTTL,
		MinPINLength:   cfg.Payments.MinPINLength,
		WalletIDLength: cfg.Payments.WalletIDLength,
	}, log)

	bookingService := bookings.NewService(bookingRepo, catalogService, unlockService, log)

	app := &App{
		cfg:              cfg,
		log:              log,
		authService:      authService,
		discoveryService: discoveryService,
		unlockService:    unlockService,
		paymentService:   paymentService,
		bookingService:   bookingService,
	}

	r := chi.NewRouter()
	applyMiddlewares(r, log)
	r.Use(authMiddleware(authService, log))
	app.routes(r)

	app.server = &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	return app, nil
}

func (a *App) Run() error {
	a.log.Info("http server starting", zap.String("addr", a.cfg.HTTP.Addr))
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	a.log.Info("http server shutting down")
	return a.server.Shutdown(ctx)
}
