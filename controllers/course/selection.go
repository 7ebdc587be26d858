package courseController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

// SelectionRow is a student's enrollment joined with course and teacher
// details for the "my selections" view.
type SelectionRow struct {
	CourseID      string   `json:"course_id"`
	CourseName    string   `json:"course_name"`
	Hours         *int     `json:"hours"`
	Credits       *float64 `json:"credits"`
	TeacherName   string   `json:"teacher_name"`
	SelectionTime string   `json:"selection_time"`
	Grade         *float64 `json:"grade"`
}

func SelectCourse(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Params("id")
	db := database.Database.Db

	var course models.Course
	if err := db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
		return middleware.Message(c, fiber.StatusNotFound, "Selection failed: course does not exist")
	}
	if course.ApprovalStatus != models.StatusApproved {
		return middleware.Message(c, fiber.StatusBadRequest, "Selection failed: course is not approved")
	}

	var existing models.Selection
	if err := db.Where("student_id = ? AND course_id = ?", studentID, courseID).First(&existing).Error; err == nil {
		return middleware.Message(c, fiber.StatusConflict, "You have already selected this course")
	}

	selection := models.Selection{
		StudentID: studentID,
		CourseID:  courseID,
	}

	tx := db.Begin()
	if err := tx.Create(&selection).Error; err != nil {
		tx.Rollback()
		log.Printf("Error creating selection %s/%s: %v", studentID, courseID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to select course!")
	}
	tx.Commit()

	return middleware.Message(c, fiber.StatusCreated, fmt.Sprintf("Course %s selected successfully", courseID))
}

func GetMySelections(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var selections []SelectionRow
	err := database.Database.Db.Model(&models.Selection{}).
		Select("selections.course_id, courses.course_name, courses.hours, courses.credits, teachers.name AS teacher_name, selections.selection_timestamp AS selection_time, selections.grade").
		Joins("JOIN courses ON selections.course_id = courses.course_id").
		Joins("LEFT JOIN teachers ON courses.teacher_id = teachers.teacher_id").
		Where("selections.student_id = ?", studentID).
		Order("selections.selection_timestamp DESC").
		Scan(&selections).Error
	if err != nil {
		log.Printf("Error fetching selections for student %s: %v", studentID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch selection list!")
	}

	return c.Status(fiber.StatusOK).JSON(selections)
}

func DeselectCourse(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	courseID := c.Params("id")
	db := database.Database.Db

	result := db.Where("student_id = ? AND course_id = ?", studentID, courseID).Delete(&models.Selection{})
	if result.Error != nil {
		log.Printf("Error deleting selection %s/%s: %v", studentID, courseID, result.Error)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to deselect course!")
	}

	if result.RowsAffected == 0 {
		if err := db.Where("course_id = ?", courseID).First(&models.Course{}).Error; err != nil {
			return middleware.Message(c, fiber.StatusNotFound, "Deselection failed: course does not exist")
		}
		return middleware.Message(c, fiber.StatusNotFound, "Deselection failed: you have not selected this course")
	}

	return middleware.Message(c, fiber.StatusOK, fmt.Sprintf("Course %s deselected successfully", courseID))
}
