package models

import "time"

// Approval lifecycle for moderated entities (courses and messages).
// pending is the only non-terminal state.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Course struct {
	CourseID          string     `json:"course_id" gorm:"primaryKey;size:20"`
	CourseName        string     `json:"course_name" gorm:"not null;size:255"`
	Hours             *int       `json:"hours"`
	Credits           *float64   `json:"credits"`
	TeacherID         string     `json:"teacher_id" gorm:"index;not null;size:20"`
	ApprovalStatus    string     `json:"approval_status" gorm:"default:'pending';size:10"`
	ApprovedByAdminID *string    `json:"-" gorm:"size:20"`
	ApprovalTimestamp *time.Time `json:"approval_timestamp"`
	CreatedAt         time.Time  `json:"created_at"`

	Teacher Teacher `json:"-" gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE"`
}
