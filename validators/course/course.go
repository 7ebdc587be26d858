package courseValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type UploadCourseRequest struct {
	CourseID   string   `json:"course_id"`
	CourseName string   `json:"course_name"`
	Hours      *int     `json:"hours"`
	Credits    *float64 `json:"credits"`
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return len(s) > 0
}

func UploadCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UploadCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Request body must be valid JSON!")
		}

		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.CourseName = strings.TrimSpace(reqData.CourseName)

		errors := make(map[string]string)

		if reqData.CourseID == "" {
			errors["course_id"] = "Course ID is required!"
		} else if !isAlphanumeric(reqData.CourseID) {
			errors["course_id"] = "Course ID must be alphanumeric!"
		}

		if reqData.CourseName == "" {
			errors["course_name"] = "Course name is required!"
		} else if len(reqData.CourseName) > 255 {
			errors["course_name"] = "Course name must be at most 255 characters!"
		}

		if reqData.Hours != nil && *reqData.Hours < 0 {
			errors["hours"] = "Hours must not be negative!"
		}
		if reqData.Credits != nil && *reqData.Credits < 0 {
			errors["credits"] = "Credits must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
