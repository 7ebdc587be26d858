package client

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// ConfirmFunc asks the user to confirm a destructive action. Returning
// false aborts the action before any call is issued.
type ConfirmFunc func(prompt string) bool

// EnrollmentManager governs the student↔course selection relation. Its
// marker set is a cache of the server's enrollment listing, rebuilt on
// every sync and never trusted as sole truth across sessions.
type EnrollmentManager struct {
	gateway *Gateway
	session *Session
	confirm ConfirmFunc

	mu       sync.Mutex
	selected map[string]struct{} // course ids the student is enrolled in
	approved map[string]struct{} // course ids known approved from the latest fetch
	inflight map[string]struct{}
	version  uint64
}

func newEnrollmentManager(gateway *Gateway, session *Session, confirm ConfirmFunc) *EnrollmentManager {
	if confirm == nil {
		confirm = func(string) bool { return true }
	}
	return &EnrollmentManager{
		gateway:  gateway,
		session:  session,
		confirm:  confirm,
		selected: make(map[string]struct{}),
		approved: make(map[string]struct{}),
		inflight: make(map[string]struct{}),
	}
}

// SyncSelections overwrites the local marker set from a fresh fetch of the
// student's enrollment listing.
func (m *EnrollmentManager) SyncSelections(courseIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = make(map[string]struct{}, len(courseIDs))
	for _, id := range courseIDs {
		m.selected[id] = struct{}{}
	}
	m.version++
}

// SyncApproved records which courses the latest fetch showed as approved.
// Select is only legal against courses in this set.
func (m *EnrollmentManager) SyncApproved(courseIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approved = make(map[string]struct{}, len(courseIDs))
	for _, id := range courseIDs {
		m.approved[id] = struct{}{}
	}
}

// Selected reports whether the local marker set holds the course.
func (m *EnrollmentManager) Selected(courseID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.selected[courseID]
	return ok
}

// Version counts marker-set rebuilds.
func (m *EnrollmentManager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Select enrolls the student in an approved course. Fails fast without a
// call when the course is not known approved, already selected, or has an
// operation in flight. On failure no local state changes.
func (m *EnrollmentManager) Select(ctx context.Context, courseID string) (string, error) {
	if err := m.session.Require(ActionSelectCourse); err != nil {
		return "", err
	}

	m.mu.Lock()
	if _, busy := m.inflight[courseID]; busy {
		m.mu.Unlock()
		return "", &InFlightError{Kind: KindCourse, ID: courseID}
	}
	if _, ok := m.approved[courseID]; !ok {
		m.mu.Unlock()
		return "", &ValidationError{Message: fmt.Sprintf("course %s is not approved for selection", courseID)}
	}
	if _, ok := m.selected[courseID]; ok {
		m.mu.Unlock()
		return "", &ValidationError{Message: fmt.Sprintf("course %s is already selected", courseID)}
	}
	m.inflight[courseID] = struct{}{}
	m.mu.Unlock()

	message, err := m.gateway.CallMessage(ctx, http.MethodPost, fmt.Sprintf("/api/courses/%s/select", courseID), nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, courseID)

	if err != nil {
		return "", err
	}

	m.selected[courseID] = struct{}{}
	return message, nil
}

// Deselect removes an enrollment after explicit confirmation. The marker
// must exist locally; on failure it is retained.
func (m *EnrollmentManager) Deselect(ctx context.Context, courseID string) (string, error) {
	if err := m.session.Require(ActionSelectCourse); err != nil {
		return "", err
	}

	m.mu.Lock()
	if _, busy := m.inflight[courseID]; busy {
		m.mu.Unlock()
		return "", &InFlightError{Kind: KindCourse, ID: courseID}
	}
	if _, ok := m.selected[courseID]; !ok {
		m.mu.Unlock()
		return "", &ValidationError{Message: fmt.Sprintf("course %s is not in your selections", courseID)}
	}
	m.mu.Unlock()

	if !m.confirm(fmt.Sprintf("Deselect course %s?", courseID)) {
		return "", ErrCancelled
	}

	m.mu.Lock()
	if _, busy := m.inflight[courseID]; busy {
		m.mu.Unlock()
		return "", &InFlightError{Kind: KindCourse, ID: courseID}
	}
	m.inflight[courseID] = struct{}{}
	m.mu.Unlock()

	message, err := m.gateway.CallMessage(ctx, http.MethodDelete, fmt.Sprintf("/api/selections/%s", courseID), nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, courseID)

	if err != nil {
		return "", err
	}

	delete(m.selected, courseID)
	return message, nil
}
