// README: API gateway; builds the gin engine and registers all routes.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"foodbridge/internal/http/handlers"
	"foodbridge/internal/http/middleware"
	"foodbridge/internal/infra"
	"foodbridge/internal/modules/claim"
	"foodbridge/internal/modules/donation"
	"foodbridge/internal/modules/notify"
	"foodbridge/internal/modules/pickup"
	"foodbridge/internal/modules/user"
	"foodbridge/internal/types"
)

type ServerDeps struct {
	Donations     *donation.Service
	Pickups       *pickup.Service
	Claims        *claim.Service
	Notifications *notify.Service
	Users         *user.Store
	Verifier      infra.TokenVerifier
	Logger        *slog.Logger
}

type Server struct {
	deps ServerDeps
}

func NewServer(deps ServerDeps) *Server {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Server{deps: deps}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.Recovery(s.deps.Logger), middleware.Logging(s.deps.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	donationHandler := handlers.NewDonationHandler(s.deps.Donations)

	// Public map view has no auth; everything else requires a token.
	r.GET("/api/donations/public-map", donationHandler.PublicMap)

	api := r.Group("/api", middleware.Auth(s.deps.Verifier))

	donations := api.Group("/donations")
	donations.POST("", middleware.RequireRoles(types.RoleDonor, types.RoleAdmin), donationHandler.Create)
	donations.GET("", donationHandler.List)
	donations.GET("/volunteer/available", middleware.RequireRoles(types.RoleVolunteer, types.RoleAdmin), donationHandler.Available)
	donations.GET("/ngo/available", middleware.RequireRoles(types.RoleNGO, types.RoleAdmin), donationHandler.NgoAvailable)
	donations.GET("/nearby", middleware.RequireRoles(types.RoleVolunteer, types.RoleNGO, types.RoleAdmin), donationHandler.Nearby)
	donations.GET("/stats/overview", donationHandler.Overview)
	donations.GET("/stats/weekly", donationHandler.WeeklyTrends)
	donations.GET("/stats/admin", middleware.RequireRoles(types.RoleAdmin), donationHandler.AdminOverview)
	donations.GET("/:id", donationHandler.Get)
	donations.PUT("/:id/status", donationHandler.UpdateStatus)
	donations.PUT("/:id/claim", middleware.RequireRoles(types.RoleNGO), donationHandler.Claim)

	pickupHandler := handlers.NewPickupHandler(s.deps.Pickups, s.deps.Donations)
	pickups := api.Group("/pickups")
	pickups.POST("/assign", middleware.RequireRoles(types.RoleAdmin), pickupHandler.Assign)
	pickups.PUT("/:id/status", middleware.RequireRoles(types.RoleVolunteer, types.RoleAdmin), pickupHandler.UpdateStatus)
	pickups.GET("/my", middleware.RequireRoles(types.RoleVolunteer), pickupHandler.My)
	pickups.GET("", middleware.RequireRoles(types.RoleAdmin), pickupHandler.All)

	claimHandler := handlers.NewClaimHandler(s.deps.Claims)
	claims := api.Group("/claims")
	claims.GET("/my", middleware.RequireRoles(types.RoleNGO), claimHandler.My)
	claims.GET("/pending", middleware.RequireRoles(types.RoleAdmin), claimHandler.Pending)
	claims.PUT("/:id/process", middleware.RequireRoles(types.RoleAdmin), claimHandler.Process)

	notificationHandler := handlers.NewNotificationHandler(s.deps.Notifications)
	notifications := api.Group("/notifications")
	notifications.GET("", notificationHandler.Latest)
	notifications.PUT("/read-all", notificationHandler.MarkAllRead)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)

	userHandler := handlers.NewUserHandler(s.deps.Users)
	api.GET("/users/me", userHandler.Me)
	api.PUT("/users/:id/verify", middleware.RequireRoles(types.RoleAdmin), userHandler.Verify)

	return r
}
