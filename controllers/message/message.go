package messageController

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	messageValidator "coursehub/validators/message"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// PendingMessage is the moderation queue row shown to admins.
type PendingMessage struct {
	MessageID   uint      `json:"message_id"`
	Content     string    `json:"content"`
	PostDate    time.Time `json:"post_date"`
	StudentID   string    `json:"student_id"`
	StudentName string    `json:"student_name"`
}

func PostMessage(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	reqData, ok := c.Locals("validatedMessage").(*messageValidator.PostMessageRequest)
	if !ok {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid request data!")
	}

	message := models.Message{
		StudentID:      studentID,
		Content:        reqData.Content,
		ApprovalStatus: models.StatusPending,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		log.Printf("Error creating message for student %s: %v", studentID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to post message!")
	}

	return middleware.Message(c, fiber.StatusCreated, "Message posted successfully, awaiting admin approval")
}

func GetMyMessages(c *fiber.Ctx) error {
	studentID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	var messages []models.Message
	err := database.Database.Db.
		Where("student_id = ?", studentID).
		Order("post_date DESC").
		Find(&messages).Error
	if err != nil {
		log.Printf("Error fetching messages for student %s: %v", studentID, err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch your message list!")
	}

	return c.Status(fiber.StatusOK).JSON(messages)
}

func GetPendingMessages(c *fiber.Ctx) error {
	var pending []PendingMessage
	err := database.Database.Db.Model(&models.Message{}).
		Select("messages.message_id, messages.content, messages.post_date, messages.student_id, students.name AS student_name").
		Joins("JOIN students ON messages.student_id = students.student_id").
		Where("messages.approval_status = ?", models.StatusPending).
		Order("messages.post_date ASC").
		Scan(&pending).Error
	if err != nil {
		log.Printf("Error fetching pending messages: %v", err)
		return middleware.Message(c, fiber.StatusInternalServerError, "Failed to fetch pending message list!")
	}

	return c.Status(fiber.StatusOK).JSON(pending)
}

// transitionMessage mirrors the course moderation guard: only pending
// messages can move, everything else reports 404/409.
func transitionMessage(c *fiber.Ctx, newStatus, verb string) error {
	adminID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.Message(c, fiber.StatusUnauthorized, "Unauthorized!")
	}

	messageID, err := c.ParamsInt("id")
	if err != nil {
		return middleware.Message(c, fiber.StatusBadRequest, "Invalid message ID!")
	}

	db := database.Database.Db

	result := db.Model(&models.Message{}).
		Where("message_id = ? AND approval_status = ?", messageID, models.StatusPending).
		Updates(map[string]interface{}{
			"approval_status":      newStatus,
			"approved_by_admin_id": adminID,
			"approval_timestamp":   time.Now(),
		})
	if result.Error != nil {
		log.Printf("Error updating message %d to %s: %v", messageID, newStatus, result.Error)
		return middleware.Message(c, fiber.StatusInternalServerError, fmt.Sprintf("Failed to %s message!", verb))
	}

	if result.RowsAffected == 0 {
		var message models.Message
		if err := db.Where("message_id = ?", messageID).First(&message).Error; err != nil {
			return middleware.Message(c, fiber.StatusNotFound, fmt.Sprintf("Cannot %s: message not found", verb))
		}
		return middleware.Message(c, fiber.StatusConflict, fmt.Sprintf("Cannot %s: message is no longer pending", verb))
	}

	utils.NotifyMessageDecision(uint(messageID), newStatus)

	return middleware.Message(c, fiber.StatusOK, fmt.Sprintf("Message %d has been %s", messageID, newStatus))
}

func ApproveMessage(c *fiber.Ctx) error {
	return transitionMessage(c, models.StatusApproved, "approve")
}

func RejectMessage(c *fiber.Ctx) error {
	return transitionMessage(c, models.StatusRejected, "reject")
}
