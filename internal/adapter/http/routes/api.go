package routes

import (
	"cfr_notifier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI = "/api"
)

func addClientRoutes(rg *gin.RouterGroup, clientHandler *handlers.ClientHandler) {
	if clientHandler == nil {
		return
	}
	rg.GET("/firebase-config", clientHandler.FirebaseConfig)
	rg.POST("/log", clientHandler.LogAction)
}

func addMessagingRoutes(rg *gin.RouterGroup, messagingHandler *handlers.MessagingHandler, geocodeHandler *handlers.GeocodeHandler) {
	if messagingHandler != nil {
		// Raw relays used by the admin front-end.
		rg.POST("/send-email", messagingHandler.SendEmail)
		rg.POST("/send-sms", messagingHandler.SendSMS)
	}
	if geocodeHandler != nil {
		rg.GET("/geocode", geocodeHandler.Search)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, notificationHandler *handlers.NotificationHandler) {
	if notificationHandler == nil {
		return
	}
	rg.POST("/send-confirmation", notificationHandler.SendConfirmation)
	rg.POST("/send-reminders", notificationHandler.SendReminders)
}
