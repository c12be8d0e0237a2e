package api

import (
	"log"
	stdhttp "net/http"

	intconfig "railticket/internal/config"
	h "railticket/internal/http/handlers"
	"railticket/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		// Catalog
		trains := api.Group("/trains")
		trains.GET("", h.GetTrains)
		trains.GET("/:id", h.GetTrainByID)
		trains.GET("/:id/schedules", h.GetTrainSchedules)

		// Price preview
		api.POST("/quote", h.GetQuote)

		// Bookings
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.GetBookings)
		bookings.GET("/:id", h.GetBookingByID)
		bookings.GET("/:id/e-ticket", h.GetBookingETicket)
		bookings.DELETE("/:id", middleware.AuthRequired([]byte(env.JWTSecret)), h.DeleteBooking)

		// Stats
		api.GET("/stats/bookings", h.GetBookingStats)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	h.SetRouter(r)
	return r
}
