package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseValidator "coursehub/validators/course"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ApprovedCourse is the public listing row: approved courses joined with
// the owning teacher's name.
type ApprovedCourse struct {
	CourseID    string   `json:"course_id"`
	CourseName  string   `json:"course_name"`
	Hours       *int     `json:"hours"`
	Credits     *float64 `json:"credits"`
	TeacherName string   `json:"teacher_name"`
}

func GetApprovedCourses(c *fiber.Ctx) error {
	var courses []ApprovedCourse
	err := database.Database.Db.Model(&models.Course{}).
		Select("courses.course_id, courses.course_name, courses.hours, courses.credits, teachers.name AS teacher_name").
		Joins("JOIN teachers ON courses.teacher_id = teachers.teacher_id").
		Where("courses.approval_status = ?", models.StatusApproved).
		Order("courses.course_id").
		Scan(&courses).Error
	if err != nil {
		log.Printf("Error fetching approved courses: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch course list!")
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}

func UploadCourse(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.UploadCourseRequest)
	if !ok {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	db := database.Database.Db

	if err := db.Where("course_id = ?", reqData.CourseID).First(&models.Course{}).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "Course ID is already in use!")
	}

	course := models.Course{
		CourseID:       reqData.CourseID,
		CourseName:     reqData.CourseName,
		Hours:          reqData.Hours,
		Credits:        reqData.Credits,
		TeacherID:      teacherID,
		ApprovalStatus: models.StatusPending,
		CreatedAt:      time.Now(),
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course %s: %v", reqData.CourseID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to upload course!")
	}

	return middleware.Message(c, fiber.StatusCreated, "Course uploaded successfully, awaiting admin approval")
}

func GetMyCourses(c *fiber.Ctx) error {
	teacherID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var courses []models.Course
	err := database.Database.Db.
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&courses).Error
	if err != nil {
		log.Printf("Error fetching courses for teacher %s: %v", teacherID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch your course list!")
	}

	return c.Status(fiber.StatusOK).JSON(courses)
}
