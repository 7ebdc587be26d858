package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PendingCourse is the moderation queue row shown to admins.
type PendingCourse struct {
	CourseID    string    `json:"course_id"`
	CourseName  string    `json:"course_name"`
	Hours       *int      `json:"hours"`
	Credits     *float64  `json:"credits"`
	TeacherID   string    `json:"teacher_id"`
	TeacherName string    `json:"teacher_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func GetPendingCourses(c *fiber.Ctx) error {
	var pending []PendingCourse
	err := database.Database.Db.Model(&models.Course{}).
		Select("courses.course_id, courses.course_name, courses.hours, courses.credits, courses.teacher_id, teachers.name AS teacher_name, courses.created_at").
		Joins("JOIN teachers ON courses.teacher_id = teachers.teacher_id").
		Where("courses.approval_status = ?", models.StatusPending).
		Order("courses.created_at ASC").
		Scan(&pending).Error
	if err != nil {
		log.Printf("Error fetching pending courses: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch pending course list!")
	}

	return c.Status(fiber.StatusOK).JSON(pending)
}

// transitionCourse moves a pending course to a terminal status. The
// WHERE guard on approval_status makes the transition race-safe: a second
// admin acting on the same course updates zero rows and gets 409.
func transitionCourse(c *fiber.Ctx, newStatus, verb string) error {
	adminID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Params("id")
	db := database.Database.Db

	result := db.Model(&models.Course{}).
		Where("course_id = ? AND approval_status = ?", courseID, models.StatusPending).
		Updates(map[string]interface{}{
			"approval_status":      newStatus,
			"approved_by_admin_id": adminID,
			"approval_timestamp":   time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating course %s to %s: %v", courseID, newStatus, result.Error)
		return middleware.Message(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to %s course!", verb))
	}

	if result.RowsAffected == 0 {
		var course models.Course
		if err := db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
			return middleware.Message(c, fiber.StatusNotFound, fmt.Sprintf("Cannot %s: course not found", verb))
		}
		return middleware.Message(c, fiber.StatusConflict, fmt.Sprintf("Cannot %s: course is no longer pending", verb))
	}

	utils.NotifyCourseDecision(courseID, newStatus)

	return middleware.Message(c, fiber.StatusOK, fmt.Sprintf("Course %s has been %s", courseID, newStatus))
}

func ApproveCourse(c *fiber.Ctx) error {
	return transitionCourse(c, models.StatusApproved, "approve")
}

func RejectCourse(c *fiber.Ctx) error {
	return transitionCourse(c, models.StatusRejected, "reject")
}
