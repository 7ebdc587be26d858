package models

import "time"

type Message struct {
	MessageID         uint       `json:"message_id" gorm:"primaryKey;autoIncrement"`
	StudentID         string     `json:"student_id" gorm:"index;not null;size:20"`
	Content           string     `json:"content" gorm:"not null;type:text"`
	ApprovalStatus    string     `json:"approval_status" gorm:"default:'pending';size:10"`
	ApprovedByAdminID *string    `json:"-" gorm:"size:20"`
	ApprovalTimestamp *time.Time `json:"approval_timestamp"`
	PostDate          time.Time  `json:"post_date" gorm:"autoCreateTime"`

	Student Student `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
}
