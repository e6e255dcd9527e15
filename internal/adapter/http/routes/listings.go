package routes

import (
	"azhub/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProperties    = "/properties"
	PathNotifications = "/notifications"
	PathConfirmations = "/confirmations"
)

func addListingRoutes(
	rg *gin.RouterGroup,
	propertyHandler *handlers.PropertyHandler,
	bidHandler *handlers.BidHandler,
	notificationHandler *handlers.NotificationHandler,
	confirmationHandler *handlers.ConfirmationHandler,
) {
	properties := rg.Group(PathProperties)
	{
		properties.GET("", propertyHandler.ListProperties)
		properties.POST("", propertyHandler.CreateProperty)
		properties.GET("/:id", propertyHandler.GetProperty)
		properties.PATCH("/:id/status", propertyHandler.UpdateStatus)
		properties.PATCH("/:id/note", propertyHandler.UpdateNote)
		properties.GET("/:id/logs", propertyHandler.GetPropertyLogs)

		properties.POST("/:id/bids", bidHandler.SubmitBid)
		properties.PATCH("/:id/bids/:bid_id/approve", bidHandler.ApproveBid)
		properties.PATCH("/:id/bids/:bid_id/reject", bidHandler.RejectBid)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", notificationHandler.ListNotifications)
		notifications.PATCH("/:id/read", notificationHandler.MarkNotificationRead)
		notifications.PATCH("/read-all", notificationHandler.MarkAllNotificationsRead)
	}

	confirmations := rg.Group(PathConfirmations)
	{
		confirmations.POST("", confirmationHandler.RequestConfirmation)
		confirmations.GET("", confirmationHandler.GetPendingConfirmation)
		confirmations.POST("/confirm", confirmationHandler.Confirm)
		confirmations.POST("/cancel", confirmationHandler.CancelConfirmation)
	}
}
