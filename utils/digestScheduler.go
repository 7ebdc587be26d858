package utils

import (
	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	"fmt"
	"log"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the daily moderation digest.
func InitializeDigestScheduler() *cron.Cron {
	log.Println("[DIGEST-SCHEDULER] Initializing moderation digest scheduler...")

	c := cron.New()

	// Run daily at 8 AM server time
	c.AddFunc("0 8 * * *", func() {
		log.Println("[DIGEST-SCHEDULER] Running daily moderation digest...")
		SendModerationDigest()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Moderation digest scheduler started - runs daily at 8 AM")
	return c
}

// SendModerationDigest counts the moderation backlog and today's new
// submissions and mails them to the configured admin inbox.
func SendModerationDigest() {
	db := database.Database.Db

	var pendingCourses, pendingMessages int64
	db.Model(&models.Course{}).Where("approval_status = ?", models.StatusPending).Count(&pendingCourses)
	db.Model(&models.Message{}).Where("approval_status = ?", models.StatusPending).Count(&pendingMessages)

	dayStart := now.BeginningOfDay()
	var coursesToday, messagesToday int64
	db.Model(&models.Course{}).Where("created_at >= ?", dayStart).Count(&coursesToday)
	db.Model(&models.Message{}).Where("post_date >= ?", dayStart).Count(&messagesToday)

	summary := fmt.Sprintf(
		"Pending courses: %d\nPending messages: %d\nCourses submitted today: %d\nMessages posted today: %d\n",
		pendingCourses, pendingMessages, coursesToday, messagesToday)

	log.Printf("[DIGEST-SCHEDULER] %s", summary)

	if config.AppConfig.DigestRecipient == "" {
		return
	}
	if err := SendEmail("Moderators", config.AppConfig.DigestRecipient, "CourseHub moderation digest", summary); err != nil {
		log.Printf("[DIGEST-SCHEDULER] Failed to send digest: %v", err)
	}
}
