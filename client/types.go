package client

// Role names as carried in the login response and JWT claims.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Approval lifecycle values for moderated entities.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// EntityKind names a moderated entity kind.
type EntityKind string

const (
	KindCourse  EntityKind = "course"
	KindMessage EntityKind = "message"
)

// User is the authenticated identity for the page session. The ID is
// role-scoped (student_id / teacher_id / admin_id).
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// ApprovedCourse is a row of the public approved-course listing.
type ApprovedCourse struct {
	CourseID    string   `json:"course_id"`
	CourseName  string   `json:"course_name"`
	Hours       *int     `json:"hours"`
	Credits     *float64 `json:"credits"`
	TeacherName string   `json:"teacher_name"`
}

// MyCourse is a row of a teacher's own-course listing, any status.
type MyCourse struct {
	CourseID          string   `json:"course_id"`
	CourseName        string   `json:"course_name"`
	Hours             *int     `json:"hours"`
	Credits           *float64 `json:"credits"`
	ApprovalStatus    string   `json:"approval_status"`
	CreatedAt         string   `json:"created_at"`
	ApprovalTimestamp *string  `json:"approval_timestamp"`
}

// PendingCourse is a row of the admin's course moderation queue.
type PendingCourse struct {
	CourseID    string   `json:"course_id"`
	CourseName  string   `json:"course_name"`
	Hours       *int     `json:"hours"`
	Credits     *float64 `json:"credits"`
	TeacherID   string   `json:"teacher_id"`
	TeacherName string   `json:"teacher_name"`
	CreatedAt   string   `json:"created_at"`
}

// Selection is a row of the student's enrollment listing.
type Selection struct {
	CourseID      string   `json:"course_id"`
	CourseName    string   `json:"course_name"`
	Hours         *int     `json:"hours"`
	Credits       *float64 `json:"credits"`
	TeacherName   string   `json:"teacher_name"`
	SelectionTime string   `json:"selection_time"`
	Grade         *float64 `json:"grade"`
}

// MyMessage is a row of the student's own message-board history.
type MyMessage struct {
	MessageID         uint    `json:"message_id"`
	Content           string  `json:"content"`
	ApprovalStatus    string  `json:"approval_status"`
	PostDate          string  `json:"post_date"`
	ApprovalTimestamp *string `json:"approval_timestamp"`
}

// PendingMessage is a row of the admin's message moderation queue.
type PendingMessage struct {
	MessageID   uint   `json:"message_id"`
	Content     string `json:"content"`
	PostDate    string `json:"post_date"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
}
