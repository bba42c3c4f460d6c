package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitness-planner/internal/service"
	"fitness-planner/internal/session"
)

// SetupRoutes wires the HTTP surface: collection-style CRUD for users and
// media, plus the session-gate endpoint. None of the /api routes require
// authentication; the gate is a UI lock only.
func SetupRoutes(
	router *gin.Engine,
	accessCode string,
	tokenIssuer *session.TokenIssuer,
	userService service.UserService,
	mediaService service.MediaService,
) {
	userHandler := NewUserHandler(userService)
	mediaHandler := NewMediaHandler(mediaService)
	sessionHandler := NewSessionHandler(accessCode, tokenIssuer)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiGroup := router.Group("/api")
	{
		apiGroup.POST("/session", sessionHandler.Verify)

		apiGroup.GET("/users", userHandler.ListUsers)
		apiGroup.POST("/users", userHandler.CreateUser)
		apiGroup.PUT("/users", userHandler.UpdateUser)
		apiGroup.DELETE("/users", userHandler.DeleteUser)

		apiGroup.GET("/media", mediaHandler.ListMedia)
		apiGroup.POST("/media", mediaHandler.CreateMedia)
		apiGroup.DELETE("/media", mediaHandler.DeleteMedia)
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
