package client

import "sync"

// Action is an entry of the capability table.
type Action string

const (
	ActionSubmitCourse    Action = "submit course"
	ActionViewApproved    Action = "view approved courses"
	ActionViewOwnCourses  Action = "view own courses"
	ActionModerateCourse  Action = "approve/reject course"
	ActionSelectCourse    Action = "select/deselect course"
	ActionPostMessage     Action = "post message"
	ActionModerateMessage Action = "approve/reject message"
)

// capabilities is the static (action, role) permission table. Commands for
// which it answers false fail fast and never reach the network.
var capabilities = map[Action]map[string]bool{
	ActionSubmitCourse:    {RoleTeacher: true},
	ActionViewApproved:    {RoleStudent: true, RoleTeacher: true, RoleAdmin: true},
	ActionViewOwnCourses:  {RoleTeacher: true},
	ActionModerateCourse:  {RoleAdmin: true},
	ActionSelectCourse:    {RoleStudent: true},
	ActionPostMessage:     {RoleStudent: true},
	ActionModerateMessage: {RoleAdmin: true},
}

// Can answers the capability table for an (action, role) pair.
func Can(action Action, role string) bool {
	return capabilities[action][role]
}

// Session holds the bearer credential and authenticated identity for the
// lifetime of a page session. Initialized on login, cleared on logout.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User
}

func NewSession() *Session {
	return &Session{}
}

// SetAuth installs the credential and identity returned by a login call.
func (s *Session) SetAuth(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
}

// Clear drops the credential and identity (logout).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// Token returns the bearer credential, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser returns the authenticated identity or ErrUnauthenticated.
func (s *Session) CurrentUser() (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil || s.token == "" {
		return User{}, ErrUnauthenticated
	}
	return *s.user, nil
}

// Authenticated reports whether a credential is present.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// Require fails fast with ErrUnauthenticated or PermissionDenied unless the
// signed-in role may perform the action.
func (s *Session) Require(action Action) error {
	user, err := s.CurrentUser()
	if err != nil {
		return err
	}
	if !Can(action, user.Role) {
		return &PermissionDenied{Action: action, Role: user.Role}
	}
	return nil
}
