package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// ApprovalManager governs the pending → approved | rejected lifecycle for
// one moderated entity kind. It keeps a local projection of the pending
// queue, rebuilt from every fetch, and serializes transitions per entity:
// while a transition for an entity is in flight no second one is issued.
type ApprovalManager struct {
	kind     EntityKind
	endpoint string // e.g. "/api/courses"
	gateway  *Gateway
	session  *Session

	mu       sync.Mutex
	pending  map[string]struct{}
	inflight map[string]struct{}
	version  uint64
}

func newApprovalManager(kind EntityKind, endpoint string, gateway *Gateway, session *Session) *ApprovalManager {
	return &ApprovalManager{
		kind:     kind,
		endpoint: endpoint,
		gateway:  gateway,
		session:  session,
		pending:  make(map[string]struct{}),
		inflight: make(map[string]struct{}),
	}
}

func (m *ApprovalManager) action() Action {
	if m.kind == KindMessage {
		return ActionModerateMessage
	}
	return ActionModerateCourse
}

// SyncPending overwrites the local pending projection with a fresh server
// fetch. Entries with transitions still in flight stay excluded so a stale
// fetch cannot resurrect them.
func (m *ApprovalManager) SyncPending(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, busy := m.inflight[id]; busy {
			continue
		}
		m.pending[id] = struct{}{}
	}
	m.version++
}

// Pending reports whether the entity sits in the local pending projection.
func (m *ApprovalManager) Pending(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.pending[id]
	return ok
}

// Version counts projection rebuilds; stale views compare it before reuse.
func (m *ApprovalManager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// InFlight reports whether a transition for the entity is unresolved.
func (m *ApprovalManager) InFlight(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.inflight[id]
	return ok
}

// Approve moves a pending entity to the approved terminal state.
func (m *ApprovalManager) Approve(ctx context.Context, id string) (string, error) {
	return m.transition(ctx, id, "approve")
}

// Reject moves a pending entity to the rejected terminal state.
func (m *ApprovalManager) Reject(ctx context.Context, id string) (string, error) {
	return m.transition(ctx, id, "reject")
}

func (m *ApprovalManager) transition(ctx context.Context, id, verb string) (string, error) {
	if err := m.session.Require(m.action()); err != nil {
		return "", err
	}

	m.mu.Lock()
	if _, busy := m.inflight[id]; busy {
		m.mu.Unlock()
		return "", &InFlightError{Kind: m.kind, ID: id}
	}
	if _, ok := m.pending[id]; !ok {
		m.mu.Unlock()
		return "", &ValidationError{Message: fmt.Sprintf("%s %s is not in the pending queue", m.kind, id)}
	}
	m.inflight[id] = struct{}{}
	m.mu.Unlock()

	message, err := m.gateway.CallMessage(ctx, http.MethodPut, fmt.Sprintf("%s/%s/%s", m.endpoint, id, verb), nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, id)

	if err != nil {
		// A conflict means another session already decided this entity;
		// the server is authoritative, so drop it from the projection.
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusConflict {
			delete(m.pending, id)
		}
		return "", err
	}

	delete(m.pending, id)
	return message, nil
}
