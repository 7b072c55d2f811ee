package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// RegisterBookingRoutes registers booking routes; router must already require auth
func RegisterBookingRoutes(router gin.IRoutes, bookings *services.BookingService) {
	router.POST("/bookings", createBookingHandler(bookings))
	router.GET("/bookings", listBookingsHandler(bookings))
	router.PUT("/bookings", updateBookingHandler(bookings))
}

func createBookingHandler(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateBookingInput
		if !bindJSON(c, &req) {
			return
		}

		booking, err := bookings.Create(c.Request.Context(), middleware.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"booking": booking})
	}
}

func listBookingsHandler(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := bookings.List(c.Request.Context(), middleware.CurrentUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": list})
	}
}

func updateBookingHandler(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.UpdateBookingInput
		if !bindJSON(c, &req) {
			return
		}

		booking, err := bookings.Update(c.Request.Context(), middleware.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"booking": booking})
	}
}
