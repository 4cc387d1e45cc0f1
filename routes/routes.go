package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"counselhub/handlers"
	"counselhub/middleware"
)

// RegisterReservationRoutes registers the recurrence engine endpoints.
// All of them are administrative.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.Reservations.CreateReservationHandler)
		api.GET("", hb.Reservations.ListReservationsHandler)
		api.DELETE("/:id", hb.Reservations.DeleteReservationHandler)
	}
}

// RegisterSlotRoutes registers slot publishing and discovery endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/slots")
	{
		// Public discovery endpoints.
		api.GET("", hb.Slots.ListSlotsHandler)
		api.GET("/:id", hb.Slots.GetSlotHandler)

		// Phase 1 of the booking flow: hold the slot.
		api.POST("/:id/proceed", hb.Bookings.ProceedHandler)

		// Publishing and removal require admin credentials.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthAdminMiddleware())
		protected.POST("", hb.Slots.PublishSlotHandler)
		protected.DELETE("/:id", hb.Slots.DeleteSlotHandler)
	}
}

// RegisterRateRoutes registers administrative rate management endpoints.
func RegisterRateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/rates")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.POST("", hb.Rates.CreateRateHandler)
		api.GET("/counsellor/:counsellorID", hb.Rates.ListRatesHandler)
		api.DELETE("/:id", hb.Rates.DeleteRateHandler)
	}
}

// RegisterAuthRoutes registers admin token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/auth/admin/token", hb.Auth.AdminTokenHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Counselhub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterSlotRoutes(r, hb)
	RegisterRateRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
