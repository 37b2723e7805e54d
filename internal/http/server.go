// README: API gateway; registers HTTP routes and delegates to services.
package http

import (
	"github.com/gin-gonic/gin"

	"cruise/internal/chatbot"
	"cruise/internal/http/handlers"
	"cruise/internal/http/middleware"
	"cruise/internal/notify"
)

type ServerDeps struct {
	Chatbot *chatbot.Service
	Notify  *notify.Service
}

// NewRouter builds the gin engine with all routes and middleware registered.
func NewRouter(deps ServerDeps) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CORS(), middleware.Logging(), middleware.Recovery())

	chatHandler := handlers.NewChatHandler(deps.Chatbot)
	router.POST("/chat", chatHandler.Chat)

	rideHandler := handlers.NewRideHandler(deps.Chatbot)
	router.POST("/api/rides", rideHandler.Book)
	router.POST("/api/rides/:id/cancel", rideHandler.Cancel)
	router.GET("/api/vehicles", rideHandler.AvailableVehicles)

	userHandler := handlers.NewUserHandler(deps.Chatbot)
	router.GET("/api/users/:id/recommendations", userHandler.Recommendations)
	router.GET("/api/users/:id/safety-check", userHandler.SafetyCheck)
	router.GET("/api/users/:id/carpool-opportunities", userHandler.CarpoolOpportunities)

	if deps.Notify != nil {
		notifyHandler := handlers.NewNotifyHandler(deps.Notify)
		router.POST("/api/notify", notifyHandler.Send)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
