package courseRoutes

import (
	courseController "coursehub/controllers/course"
	"coursehub/middleware"
	"coursehub/models"
	courseValidator "coursehub/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/api/courses", middleware.JWTMiddleware)

	courses.Get("/",
		middleware.RequireRoles(models.RoleStudent, models.RoleTeacher, models.RoleAdmin),
		courseController.GetApprovedCourses)

	courses.Post("/",
		middleware.RequireRoles(models.RoleTeacher),
		courseValidator.UploadCourse(),
		courseController.UploadCourse)

	courses.Get("/my",
		middleware.RequireRoles(models.RoleTeacher),
		courseController.GetMyCourses)

	courses.Get("/pending",
		middleware.RequireRoles(models.RoleAdmin),
		courseController.GetPendingCourses)

	courses.Put("/:id/approve",
		middleware.RequireRoles(models.RoleAdmin),
		courseController.ApproveCourse)

	courses.Put("/:id/reject",
		middleware.RequireRoles(models.RoleAdmin),
		courseController.RejectCourse)

	courses.Post("/:id/select",
		middleware.RequireRoles(models.RoleStudent),
		courseController.SelectCourse)

	selections := app.Group("/api/selections", middleware.JWTMiddleware)

	selections.Get("/my",
		middleware.RequireRoles(models.RoleStudent),
		courseController.GetMySelections)

	selections.Delete("/:id",
		middleware.RequireRoles(models.RoleStudent),
		courseController.DeselectCourse)
}
