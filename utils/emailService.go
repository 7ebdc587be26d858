package utils

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends a plain-text mail through SendGrid. A missing API key
// downgrades to a log line so local setups work without credentials.
func SendEmail(toName, toAddr, subject, body string) error {
	if config.AppConfig.SendgridApiKey == "" {
		log.Printf("[MAIL] SendGrid disabled, skipping mail to %s: %s", toAddr, subject)
		return nil
	}

	from := mail.NewEmail("CourseHub", config.AppConfig.EmailSender)
	to := mail.NewEmail(toName, toAddr)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("[MAIL] Error sending mail to %s: %v", toAddr, err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("[MAIL] SendGrid rejected mail to %s: %d %s", toAddr, response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

// NotifyCourseDecision mails the owning teacher after an admin decision.
// Best-effort: runs in the background and never blocks the response.
func NotifyCourseDecision(courseID, newStatus string) {
	go func() {
		db := database.Database.Db

		var course models.Course
		if err := db.Where("course_id = ?", courseID).First(&course).Error; err != nil {
			log.Printf("[MAIL] Course %s not found for notification: %v", courseID, err)
			return
		}

		var teacher models.Teacher
		if err := db.Where("teacher_id = ?", course.TeacherID).First(&teacher).Error; err != nil || teacher.Email == "" {
			return
		}

		subject := fmt.Sprintf("Course %s has been %s", course.CourseID, newStatus)
		body := fmt.Sprintf("Hello %s,\n\nYour course %s (%s) has been %s by an administrator.\n",
			teacher.Name, course.CourseName, course.CourseID, newStatus)
		_ = SendEmail(teacher.Name, teacher.Email, subject, body)
	}()
}

// NotifyMessageDecision mails the author after a message board decision.
func NotifyMessageDecision(messageID uint, newStatus string) {
	go func() {
		db := database.Database.Db

		var message models.Message
		if err := db.Where("message_id = ?", messageID).First(&message).Error; err != nil {
			log.Printf("[MAIL] Message %d not found for notification: %v", messageID, err)
			return
		}

		var student models.Student
		if err := db.Where("student_id = ?", message.StudentID).First(&student).Error; err != nil || student.Email == "" {
			return
		}

		subject := fmt.Sprintf("Your message has been %s", newStatus)
		body := fmt.Sprintf("Hello %s,\n\nYour message posted on %s has been %s by an administrator.\n",
			student.Name, message.PostDate.Format("2006-01-02 15:04:05"), newStatus)
		_ = SendEmail(student.Name, student.Email, subject, body)
	}()
}
