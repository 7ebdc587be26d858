package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// View names a per-role screen of the application.
type View string

const (
	ViewApprovedCourses View = "approved-courses"
	ViewMyCourses       View = "my-courses"
	ViewPendingCourses  View = "pending-courses"
	ViewMySelections    View = "my-selections"
	ViewMyMessages      View = "my-messages"
	ViewPendingMessages View = "pending-messages"
)

// viewActions maps each view to the capability that gates it.
var viewActions = map[View]Action{
	ViewApprovedCourses: ActionViewApproved,
	ViewMyCourses:       ActionViewOwnCourses,
	ViewPendingCourses:  ActionModerateCourse,
	ViewMySelections:    ActionSelectCourse,
	ViewMyMessages:      ActionPostMessage,
	ViewPendingMessages: ActionModerateMessage,
}

// CourseSubmission is a teacher's new-course form.
type CourseSubmission struct {
	CourseID   string   `json:"course_id" validate:"required,alphanum"`
	CourseName string   `json:"course_name" validate:"required,max=255"`
	Hours      *int     `json:"hours,omitempty" validate:"omitempty,min=0"`
	Credits    *float64 `json:"credits,omitempty" validate:"omitempty,min=0"`
}

// Orchestrator composes the gateway, session and state managers into the
// per-role command surface. List contents are always re-derived from the
// latest fetch; the only in-place mutations are the optimistic removals
// the managers document.
type Orchestrator struct {
	session    *Session
	gateway    *Gateway
	courses    *ApprovalManager
	messages   *ApprovalManager
	enrollment *EnrollmentManager
	validate   *validator.Validate
}

// New wires an orchestrator against the API base URL. confirm guards
// destructive actions; nil accepts everything (useful in scripts).
func New(baseURL string, confirm ConfirmFunc) *Orchestrator {
	session := NewSession()
	gateway := NewGateway(baseURL, session)
	return &Orchestrator{
		session:    session,
		gateway:    gateway,
		courses:    newApprovalManager(KindCourse, "/api/courses", gateway, session),
		messages:   newApprovalManager(KindMessage, "/api/messages", gateway, session),
		enrollment: newEnrollmentManager(gateway, session, confirm),
		validate:   validator.New(),
	}
}

// Session exposes the authenticated identity and capability checks.
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Courses exposes the course moderation manager.
func (o *Orchestrator) Courses() *ApprovalManager {
	return o.courses
}

// Messages exposes the message moderation manager.
func (o *Orchestrator) Messages() *ApprovalManager {
	return o.messages
}

// Enrollment exposes the enrollment consistency manager.
func (o *Orchestrator) Enrollment() *EnrollmentManager {
	return o.enrollment
}

// Login authenticates against the role-scoped login endpoint and installs
// the returned credential into the session.
func (o *Orchestrator) Login(ctx context.Context, role, id, password string) (User, error) {
	role = strings.ToLower(role)
	idField := ""
	switch role {
	case RoleStudent:
		idField = "student_id"
	case RoleTeacher:
		idField = "teacher_id"
	case RoleAdmin:
		idField = "admin_id"
	default:
		return User{}, &ValidationError{Message: fmt.Sprintf("unknown role %q", role)}
	}

	body := map[string]string{idField: id, "password": password}
	raw, err := o.gateway.Call(ctx, http.MethodPost, "/api/auth/login/"+role, body)
	if err != nil {
		return User{}, err
	}

	var payload struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Token == "" {
		return User{}, &RequestError{Status: http.StatusOK, Message: "login response missing token"}
	}

	o.session.SetAuth(payload.Token, payload.User)
	return payload.User, nil
}

// Logout clears the session credential.
func (o *Orchestrator) Logout() {
	o.session.Clear()
}

// OpenView fetches the content of a role view. Role-disallowed views
// short-circuit to PermissionDenied without any network call.
func (o *Orchestrator) OpenView(ctx context.Context, view View) (interface{}, error) {
	action, ok := viewActions[view]
	if !ok {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown view %q", view)}
	}
	if err := o.session.Require(action); err != nil {
		return nil, err
	}

	switch view {
	case ViewApprovedCourses:
		return o.ApprovedCourses(ctx)
	case ViewMyCourses:
		return o.MyCourses(ctx)
	case ViewPendingCourses:
		return o.PendingCourses(ctx)
	case ViewMySelections:
		return o.MySelections(ctx)
	case ViewMyMessages:
		return o.MyMessages(ctx)
	default:
		return o.PendingMessages(ctx)
	}
}

// ApprovedCourses fetches the public course list and records which courses
// are selectable. For students the enrollment markers are refreshed first
// so the "already selected" state reflects the server.
func (o *Orchestrator) ApprovedCourses(ctx context.Context) ([]ApprovedCourse, error) {
	if err := o.session.Require(ActionViewApproved); err != nil {
		return nil, err
	}

	if user, err := o.session.CurrentUser(); err == nil && user.Role == RoleStudent {
		if _, err := o.MySelections(ctx); err != nil {
			return nil, err
		}
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/courses", nil)
	if err != nil {
		return nil, err
	}

	var courses []ApprovedCourse
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed course list payload"}
	}

	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.CourseID)
	}
	o.enrollment.SyncApproved(ids)

	return courses, nil
}

// MyCourses fetches the teacher's own courses, any status.
func (o *Orchestrator) MyCourses(ctx context.Context) ([]MyCourse, error) {
	if err := o.session.Require(ActionViewOwnCourses); err != nil {
		return nil, err
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/courses/my", nil)
	if err != nil {
		return nil, err
	}

	var courses []MyCourse
	if err := json.Unmarshal(raw, &courses); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed course list payload"}
	}
	return courses, nil
}

// PendingCourses fetches the admin moderation queue and rebuilds the
// course manager's pending projection from it.
func (o *Orchestrator) PendingCourses(ctx context.Context) ([]PendingCourse, error) {
	if err := o.session.Require(ActionModerateCourse); err != nil {
		return nil, err
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/courses/pending", nil)
	if err != nil {
		return nil, err
	}

	var pending []PendingCourse
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed pending course payload"}
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.CourseID)
	}
	o.courses.SyncPending(ids)

	return pending, nil
}

// PendingMessages fetches the admin message queue and rebuilds the message
// manager's pending projection from it.
func (o *Orchestrator) PendingMessages(ctx context.Context) ([]PendingMessage, error) {
	if err := o.session.Require(ActionModerateMessage); err != nil {
		return nil, err
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/messages/pending", nil)
	if err != nil {
		return nil, err
	}

	var pending []PendingMessage
	if err := json.Unmarshal(raw, &pending); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed pending message payload"}
	}

	ids := make([]string, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, strconv.FormatUint(uint64(p.MessageID), 10))
	}
	o.messages.SyncPending(ids)

	return pending, nil
}

// MySelections fetches the student's enrollments and rebuilds the local
// marker set from them.
func (o *Orchestrator) MySelections(ctx context.Context) ([]Selection, error) {
	if err := o.session.Require(ActionSelectCourse); err != nil {
		return nil, err
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/selections/my", nil)
	if err != nil {
		return nil, err
	}

	var selections []Selection
	if err := json.Unmarshal(raw, &selections); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed selection payload"}
	}

	ids := make([]string, 0, len(selections))
	for _, s := range selections {
		ids = append(ids, s.CourseID)
	}
	o.enrollment.SyncSelections(ids)

	return selections, nil
}

// MyMessages fetches the student's own message-board history.
func (o *Orchestrator) MyMessages(ctx context.Context) ([]MyMessage, error) {
	if err := o.session.Require(ActionPostMessage); err != nil {
		return nil, err
	}

	raw, err := o.gateway.Call(ctx, http.MethodGet, "/api/messages/my", nil)
	if err != nil {
		return nil, err
	}

	var messages []MyMessage
	if err := json.Unmarshal(raw, &messages); err != nil {
		return nil, &RequestError{Status: http.StatusOK, Message: "malformed message payload"}
	}
	return messages, nil
}

// SubmitCourse validates and submits a teacher's new course. The course
// always starts pending.
func (o *Orchestrator) SubmitCourse(ctx context.Context, submission CourseSubmission) (string, error) {
	if err := o.session.Require(ActionSubmitCourse); err != nil {
		return "", err
	}

	if err := o.validate.Struct(submission); err != nil {
		fields := make(map[string]string)
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			for _, f := range invalid {
				fields[f.Field()] = f.Tag()
			}
		}
		return "", &ValidationError{Message: "invalid course submission", Fields: fields}
	}

	return o.gateway.CallMessage(ctx, http.MethodPost, "/api/courses", submission)
}

// PostMessage validates and posts a student message to the board.
func (o *Orchestrator) PostMessage(ctx context.Context, content string) (string, error) {
	if err := o.session.Require(ActionPostMessage); err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", &ValidationError{Message: "message content must not be empty"}
	}

	return o.gateway.CallMessage(ctx, http.MethodPost, "/api/messages", map[string]string{"content": content})
}

// ApproveCourse / RejectCourse / ApproveMessage / RejectMessage drive the
// moderation state machines.
func (o *Orchestrator) ApproveCourse(ctx context.Context, courseID string) (string, error) {
	return o.courses.Approve(ctx, courseID)
}

func (o *Orchestrator) RejectCourse(ctx context.Context, courseID string) (string, error) {
	return o.courses.Reject(ctx, courseID)
}

func (o *Orchestrator) ApproveMessage(ctx context.Context, messageID uint) (string, error) {
	return o.messages.Approve(ctx, strconv.FormatUint(uint64(messageID), 10))
}

func (o *Orchestrator) RejectMessage(ctx context.Context, messageID uint) (string, error) {
	return o.messages.Reject(ctx, strconv.FormatUint(uint64(messageID), 10))
}

// SelectCourse / DeselectCourse drive the enrollment manager.
func (o *Orchestrator) SelectCourse(ctx context.Context, courseID string) (string, error) {
	return o.enrollment.Select(ctx, courseID)
}

func (o *Orchestrator) DeselectCourse(ctx context.Context, courseID string) (string, error) {
	return o.enrollment.Deselect(ctx, courseID)
}
