package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"gaming-zone-booking/internal/handler/api"
	reqdto "gaming-zone-booking/internal/handler/dto/request"
	"gaming-zone-booking/internal/handler/middleware"
	"gaming-zone-booking/internal/pkg/config"
	"gaming-zone-booking/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	Auth         *api.AuthHandler
	Catalog      *api.CatalogHandler
	Booking      *api.BookingHandler
	AdminBooking *api.AdminBookingHandler
	AdminCatalog *api.AdminCatalogHandler
	AdminUser    *api.AdminUserHandler
	AdminStats   *api.AdminStatsHandler

	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
}

func NewRouter(p RouterParams) error {
	if err := reqdto.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(p)
	setupRoutes(p)
	return nil
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(middleware.RequestLogger(p.Logger, p.Config.Log))
	p.Engine.Use(middleware.Metrics(p.Metrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	requireAuth := p.AuthMiddleware.RequireAuth()
	throttle := p.RateLimiter.Handler()

	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		addRoutes(auth, []route{
			{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register, Mw: []gin.HandlerFunc{throttle}},
			{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login, Mw: []gin.HandlerFunc{throttle}},
			{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout},
			{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPatch, Path: "/me", Handler: p.Auth.UpdateMe, Mw: []gin.HandlerFunc{requireAuth}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/venues", Handler: p.Catalog.ListVenues},
			{Method: http.MethodGet, Path: "/venues/:id", Handler: p.Catalog.GetVenue},
			{Method: http.MethodGet, Path: "/games/:id", Handler: p.Catalog.GetGame},
			{Method: http.MethodGet, Path: "/games/:id/availability", Handler: p.Catalog.Availability},
		})

		bookings := apiGroup.Group("/bookings")
		addRoutes(bookings, []route{
			{Method: http.MethodPost, Path: "/quote", Handler: p.Booking.Quote},
			{Method: http.MethodPost, Path: "", Handler: p.Booking.Create, Mw: []gin.HandlerFunc{requireAuth, throttle}},
			{Method: http.MethodGet, Path: "", Handler: p.Booking.ListMine, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Booking.Get, Mw: []gin.HandlerFunc{requireAuth}},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Booking.Cancel, Mw: []gin.HandlerFunc{requireAuth, throttle}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, p.AuthMiddleware.RequireAdmin())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/stats", Handler: p.AdminStats.Dashboard},

			{Method: http.MethodGet, Path: "/bookings", Handler: p.AdminBooking.List},
			{Method: http.MethodPost, Path: "/bookings", Handler: p.AdminBooking.Create},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: p.AdminBooking.ChangeStatus},

			{Method: http.MethodPost, Path: "/venues", Handler: p.AdminCatalog.CreateVenue},
			{Method: http.MethodPut, Path: "/venues/:id", Handler: p.AdminCatalog.UpdateVenue},
			{Method: http.MethodDelete, Path: "/venues/:id", Handler: p.AdminCatalog.DeleteVenue},

			{Method: http.MethodPost, Path: "/games", Handler: p.AdminCatalog.CreateGame},
			{Method: http.MethodPut, Path: "/games/:id", Handler: p.AdminCatalog.UpdateGame},
			{Method: http.MethodDelete, Path: "/games/:id", Handler: p.AdminCatalog.DeleteGame},

			{Method: http.MethodGet, Path: "/cafe-items", Handler: p.AdminCatalog.ListCafeItems},
			{Method: http.MethodPost, Path: "/cafe-items", Handler: p.AdminCatalog.CreateCafeItem},
			{Method: http.MethodPut, Path: "/cafe-items/:id", Handler: p.AdminCatalog.UpdateCafeItem},
			{Method: http.MethodDelete, Path: "/cafe-items/:id", Handler: p.AdminCatalog.DeleteCafeItem},

			{Method: http.MethodGet, Path: "/users", Handler: p.AdminUser.List},
			{Method: http.MethodPatch, Path: "/users/:id/role", Handler: p.AdminUser.ChangeRole},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

// chainHandlers runs route middleware inline and stops at the first abort.
func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
