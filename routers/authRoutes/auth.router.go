package authRoutes

import (
	authController "coursehub/controllers/auth"
	authValidator "coursehub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register/student", authValidator.RegisterStudent(), authController.RegisterStudent)
	auth.Post("/register/teacher", authValidator.RegisterTeacher(), authController.RegisterTeacher)

	auth.Post("/login/student", authValidator.Login("student_id"), authController.LoginStudent)
	auth.Post("/login/teacher", authValidator.Login("teacher_id"), authController.LoginTeacher)
	auth.Post("/login/admin", authValidator.Login("admin_id"), authController.LoginAdmin)
}
