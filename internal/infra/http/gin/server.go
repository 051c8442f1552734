package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"github.com/Beto956/rvnb/internal/infra/config"
	"github.com/Beto956/rvnb/internal/infra/obs"
)

type Handlers struct {
	Auth           AuthHTTP
	Listing        ListingHTTP
	Booking        BookingHTTP
	HostListing    HostListingHTTP
	HostBooking    HostBookingHTTP
	Calendar       CalendarHTTP
	SpotRequest    SpotRequestHTTP
	Lead           LeadHTTP
	AuthMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))
	if h.AuthMiddleware != nil {
		router.Use(h.AuthMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Auth != nil {
		api.POST("/auth/register", h.Auth.Register)
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/me", h.Auth.Me)
		api.POST("/auth/become-host", h.Auth.BecomeHost)
	}
	if h.Listing != nil {
		api.GET("/listings", h.Listing.Catalog)
		api.GET("/listings/:id", h.Listing.Detail)
	}
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
	}
	if h.HostListing != nil {
		hostListings := api.Group("/host/listings")
		hostListings.GET("", h.HostListing.List)
		hostListings.POST("", h.HostListing.Create)
		hostListings.GET("/:id", h.HostListing.Get)
		hostListings.PUT("/:id", h.HostListing.Update)
		hostListings.POST("/:id/photos", h.HostListing.UploadPhoto)
		if h.Calendar != nil {
			hostListings.GET("/:id/calendar", h.Calendar.Month)
			hostListings.PUT("/:id/calendar/:day", h.Calendar.SaveDay)
		}
	}
	if h.HostBooking != nil {
		api.GET("/host/bookings", h.HostBooking.List)
		api.POST("/host/bookings/:id/decision", h.HostBooking.Decide)
	}
	if h.SpotRequest != nil {
		api.POST("/spot-requests", h.SpotRequest.Create)
		api.GET("/spot-requests", h.SpotRequest.List)
	}
	if h.Lead != nil {
		api.POST("/leads/interest", h.Lead.Interest)
		api.POST("/leads/provider", h.Lead.Provider)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
