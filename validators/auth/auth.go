package authValidator

import (
	"coursehub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type RegisterStudentRequest struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Gender    string `json:"gender"`
	Age       *int   `json:"age"`
	Email     string `json:"email"`
}

type RegisterTeacherRequest struct {
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	Age       *int   `json:"age"`
	Title     string `json:"title"`
	Email     string `json:"email"`
}

type LoginRequest struct {
	StudentID string `json:"student_id"`
	TeacherID string `json:"teacher_id"`
	AdminID   string `json:"admin_id"`
	Password  string `json:"password"`
}

func RegisterStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Request body must be valid JSON!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.StudentID) == "" {
			errors["student_id"] = "Student ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegisterStudent", reqData)
		return c.Next()
	}
}

func RegisterTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterTeacherRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Request body must be valid JSON!")
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.TeacherID) == "" {
			errors["teacher_id"] = "Teacher ID is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRegisterTeacher", reqData)
		return c.Next()
	}
}

// Login validates the role-scoped login body. idField names the identifier
// the role logs in with (student_id, teacher_id or admin_id).
func Login(idField string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.Message(c, fiber.StatusBadRequest, "Request body must be valid JSON!")
		}

		var id string
		switch idField {
		case "student_id":
			id = reqData.StudentID
		case "teacher_id":
			id = reqData.TeacherID
		case "admin_id":
			id = reqData.AdminID
		}

		errors := make(map[string]string)

		if strings.TrimSpace(id) == "" {
			errors[idField] = "ID is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("loginId", strings.TrimSpace(id))
		c.Locals("loginPassword", reqData.Password)
		return c.Next()
	}
}
