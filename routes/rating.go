package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// RegisterRatingRoutes registers the rating route; router must already require auth
func RegisterRatingRoutes(router gin.IRoutes, ratings *services.RatingService) {
	router.POST("/rate", rateBookingHandler(ratings))
}

// rateBookingHandler lets a client rate and tip a completed booking once
func rateBookingHandler(ratings *services.RatingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RateBookingInput
		if !bindJSON(c, &req) {
			return
		}

		booking, err := ratings.Rate(c.Request.Context(), middleware.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"booking": booking})
	}
}
