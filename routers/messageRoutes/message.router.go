package messageRoutes

import (
	messageController "coursehub/controllers/message"
	"coursehub/middleware"
	"coursehub/models"
	messageValidator "coursehub/validators/message"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	messages := app.Group("/api/messages", middleware.JWTMiddleware)

	messages.Post("/",
		middleware.RequireRoles(models.RoleStudent),
		messageValidator.PostMessage(),
		messageController.PostMessage)

	messages.Get("/my",
		middleware.RequireRoles(models.RoleStudent),
		messageController.GetMyMessages)

	messages.Get("/pending",
		middleware.RequireRoles(models.RoleAdmin),
		messageController.GetPendingMessages)

	messages.Put("/:id/approve",
		middleware.RequireRoles(models.RoleAdmin),
		messageController.ApproveMessage)

	messages.Put("/:id/reject",
		middleware.RequireRoles(models.RoleAdmin),
		messageController.RejectMessage)
}
