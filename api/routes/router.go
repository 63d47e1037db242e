package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foodisbae/foodisbae-backend/api/controllers"
	"github.com/foodisbae/foodisbae-backend/api/middleware"
	"github.com/foodisbae/foodisbae-backend/internal/auth"
	"github.com/foodisbae/foodisbae-backend/internal/cart"
	"github.com/foodisbae/foodisbae-backend/internal/dashboard"
	"github.com/foodisbae/foodisbae-backend/internal/menu"
	"github.com/foodisbae/foodisbae-backend/internal/orders"
	"github.com/foodisbae/foodisbae-backend/internal/reservations"
	"github.com/foodisbae/foodisbae-backend/pkg/auth/session"
	"github.com/foodisbae/foodisbae-backend/pkg/config"
	"github.com/foodisbae/foodisbae-backend/pkg/db"
	"github.com/foodisbae/foodisbae-backend/pkg/enums"
	"github.com/foodisbae/foodisbae-backend/pkg/logger"
	"github.com/foodisbae/foodisbae-backend/pkg/metrics"
	"github.com/foodisbae/foodisbae-backend/pkg/redis"
)

// Dependencies carries everything the HTTP layer needs wired in.
type Dependencies struct {
	Config         *config.Config
	Logger         *logger.Logger
	DB             db.Pinger
	Redis          *redis.Client
	SessionChecker session.AccessSessionChecker
	HTTPMetrics    *metrics.HTTPMetrics

	Auth         auth.Service
	Menu         menu.Service
	Cart         cart.Service
	Orders       orders.Service
	Reservations reservations.Service
	Dashboard    *dashboard.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg, deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Redis))
	})

	if deps.HTTPMetrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.HTTPMetrics.Handler())
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, deps.Redis, logg)).Post("/register", controllers.AuthRegister(deps.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(deps.Auth, cfg.JWT, logg))
	})

	r.Route("/api/v1/menu", func(r chi.Router) {
		r.Get("/", controllers.MenuList(deps.Menu, logg))
		r.Get("/popular", controllers.MenuPopular(deps.Menu, logg))
		r.Get("/categories", controllers.MenuCategories(deps.Menu, logg))
		r.Get("/{itemId}", controllers.MenuItemDetail(deps.Menu, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))

		r.Route("/me", func(r chi.Router) {
			r.Get("/", controllers.ProfileFetch(deps.Auth, logg))
			r.Patch("/", controllers.ProfileUpdate(deps.Auth, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
			r.Put("/items/{itemId}", controllers.CartSetQuantity(deps.Cart, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.OrderCheckout(deps.Orders, logg))
			r.Get("/", controllers.OrderList(deps.Orders, logg))
			r.Get("/{orderId}", controllers.OrderDetail(deps.Orders, logg))
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Post("/", controllers.ReservationCreate(deps.Reservations, logg))
			r.Get("/", controllers.ReservationList(deps.Reservations, logg))
			r.Get("/{reservationId}", controllers.ReservationDetail(deps.Reservations, logg))
			r.Post("/{reservationId}/cancel", controllers.ReservationCancel(deps.Reservations, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.SessionChecker, logg))
		r.Use(middleware.RequireStaff(logg))

		r.Get("/dashboard", controllers.AdminDashboard(deps.Dashboard, logg))

		r.Route("/menu", func(r chi.Router) {
			r.Post("/", controllers.AdminMenuCreate(deps.Menu, logg))
			r.Patch("/{itemId}", controllers.AdminMenuUpdate(deps.Menu, logg))
			r.With(middleware.RequireRole(enums.RoleAdmin, logg)).Delete("/{itemId}", controllers.AdminMenuDelete(deps.Menu, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.AdminOrderList(deps.Orders, logg))
			r.Patch("/{orderId}/status", controllers.AdminOrderUpdateStatus(deps.Orders, logg))
		})

		r.Route("/reservations", func(r chi.Router) {
			r.Get("/", controllers.AdminReservationList(deps.Reservations, logg))
			r.Post("/{reservationId}/cancel", controllers.AdminReservationCancel(deps.Reservations, logg))
		})
	})

	return r
}
