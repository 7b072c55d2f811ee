package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cleaning-marketplace-server/middleware"
	"cleaning-marketplace-server/services"
)

// RegisterAuthRoutes registers the public account routes
func RegisterAuthRoutes(router gin.IRoutes, auth *services.AuthService) {
	router.POST("/register", registerHandler(auth))
	router.POST("/login", loginHandler(auth))
	router.GET("/cleaners", listCleanersHandler(auth))
}

func registerHandler(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RegisterInput
		if !bindJSON(c, &req) {
			return
		}

		if err := auth.Register(c.Request.Context(), req); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
	}
}

func loginHandler(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.LoginInput
		if !bindJSON(c, &req) {
			return
		}

		result, err := auth.Login(c.Request.Context(), req)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token": result.Token,
			"user":  result.User,
		})
	}
}

func logoutHandler(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.Logout(middleware.CurrentToken(c))
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func listCleanersHandler(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cleaners, err := auth.ListCleaners(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleaners": cleaners})
	}
}
