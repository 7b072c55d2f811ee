package routes

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// RegisterMessageRoutes registers booking message routes; router must already require auth
func RegisterMessageRoutes(router gin.IRoutes, messages *services.MessageService) {
	router.POST("/messages", createMessageHandler(messages))
	router.GET("/messages", listMessagesHandler(messages))
}

func createMessageHandler(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CreateMessageInput
		if !bindJSON(c, &req) {
			return
		}

		message, err := messages.Create(c.Request.Context(), middleware.CurrentUser(c), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": message})
	}
}

func listMessagesHandler(messages *services.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("bookingId")
		if raw == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bookingId is required"})
			return
		}
		bookingID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || bookingID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookingId"})
			return
		}

		list, err := messages.List(c.Request.Context(), middleware.CurrentUser(c), uint(bookingID))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"messages": list})
	}
}
