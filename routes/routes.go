package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// Handlers bundles the services the HTTP layer dispatches to
type Handlers struct {
	Auth     *services.AuthService
	Bookings *services.BookingService
	Messages *services.MessageService
	Ratings  *services.RatingService
}

// SetupRouter builds the gin engine with every route and middleware
func SetupRouter(h *Handlers, limiter *middleware.RateLimiter) *gin.Engine {
	router := gin.New()

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.InputValidationMiddleware())
	router.Use(middleware.RateLimitMiddleware(limiter))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	// Public routes
	RegisterAuthRoutes(router, h.Auth)

	// Protected routes
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(h.Auth))
	{
		protected.POST("/logout", logoutHandler(h.Auth))
		RegisterBookingRoutes(protected, h.Bookings)
		RegisterMessageRoutes(protected, h.Messages)
		RegisterRatingRoutes(protected, h.Ratings)
	}

	return router
}
