package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/foodisbae/foodisbae-backend/api/routes"
	"github.com/foodisbae/foodisbae-backend/internal/auth"
	"github.com/foodisbae/foodisbae-backend/internal/cart"
	"github.com/foodisbae/foodisbae-backend/internal/dashboard"
	"github.com/foodisbae/foodisbae-backend/internal/menu"
	"github.com/foodisbae/foodisbae-backend/internal/orders"
	"github.com/foodisbae/foodisbae-backend/internal/reservations"
	"github.com/foodisbae/foodisbae-backend/internal/users"
	"github.com/foodisbae/foodisbae-backend/pkg/auth/session"
	"github.com/foodisbae/foodisbae-backend/pkg/config"
	"github.com/foodisbae/foodisbae-backend/pkg/db"
	"github.com/foodisbae/foodisbae-backend/pkg/logger"
	"github.com/foodisbae/foodisbae-backend/pkg/metrics"
	"github.com/foodisbae/foodisbae-backend/pkg/migrate"
	"github.com/foodisbae/foodisbae-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	menuRepo := menu.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	reservationRepo := reservations.NewRepository(dbClient.DB())

	httpMetrics := metrics.NewHTTPMetrics()
	domainMetrics := metrics.NewDomainMetrics(httpMetrics.Registry())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, redisClient, cfg.Cart.TTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}
	cartService, err := cart.NewService(cartStore, menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:    orderRepo,
		Cart:    cartService,
		Tx:      dbClient,
		Logger:  logg,
		Metrics: domainMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	reservationsService, err := reservations.NewService(reservationRepo, domainMetrics)
	if err != nil {
		logg.Error(context.Background(), "failed to create reservations service", err)
		os.Exit(1)
	}

	dashboardService, err := dashboard.NewService(orderRepo, reservationRepo, menuRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create dashboard service", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.SeedMenu {
		seeded, err := menu.SeedSample(context.Background(), menuRepo)
		if err != nil {
			logg.Error(context.Background(), "failed to seed menu", err)
			os.Exit(1)
		}
		if seeded > 0 {
			ctx := logg.WithField(context.Background(), "items", seeded)
			logg.Info(ctx, "sample menu seeded")
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Dependencies{
			Config:         cfg,
			Logger:         logg,
			DB:             dbClient,
			Redis:          redisClient,
			SessionChecker: sessionManager,
			HTTPMetrics:    httpMetrics,
			Auth:           authService,
			Menu:           menuService,
			Cart:           cartService,
			Orders:         ordersService,
			Reservations:   reservationsService,
			Dashboard:      dashboardService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err, ok := <-errCh:
		if ok && err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		sigCtx := logg.WithField(ctx, "signal", sig.String())
		logg.Info(sigCtx, "shutting down api server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		err = multierr.Append(err, redisClient.Close())
		err = multierr.Append(err, dbClient.Close())
		if err != nil {
			logg.Error(ctx, "shutdown finished with errors", err)
			os.Exit(1)
		}
		logg.Info(ctx, "api server stopped")
	}
}
