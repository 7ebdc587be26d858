package models

import "time"

// Selection links a student to an approved course. The unique index is the
// final guard against duplicate enrollment; clients only cache it.
type Selection struct {
	ID                 uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	StudentID          string    `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null;size:20"`
	CourseID           string    `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null;size:20"`
	SelectionTimestamp time.Time `json:"selection_time" gorm:"autoCreateTime"`
	Grade              *float64  `json:"grade"`

	Student Student `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Course  Course  `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
