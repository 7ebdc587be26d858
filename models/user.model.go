package models

import "time"

// Role names carried inside JWT claims and checked by the route guards.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

type Student struct {
	StudentID    string    `json:"student_id" gorm:"primaryKey;size:20"`
	Name         string    `json:"name" gorm:"not null"`
	Gender       string    `json:"gender,omitempty" gorm:"size:10"`
	Age          *int      `json:"age,omitempty"`
	Email        string    `json:"email,omitempty" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"-"`
}

type Teacher struct {
	TeacherID    string    `json:"teacher_id" gorm:"primaryKey;size:20"`
	Name         string    `json:"name" gorm:"not null"`
	Age          *int      `json:"age,omitempty"`
	Title        string    `json:"title,omitempty" gorm:"size:50"`
	Email        string    `json:"email,omitempty" gorm:"size:255"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"-"`
}

type Administrator struct {
	AdminID      string    `json:"admin_id" gorm:"primaryKey;size:20"`
	Name         string    `json:"name" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"-"`
}
