package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authedSession(role string) *Session {
	s := NewSession()
	s.SetAuth("test-token", User{ID: "u1", Name: "Test User", Role: role})
	return s
}

func TestGatewayAttachesBearerWhenAuthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"ok"}`))
	}))
	defer srv.Close()

	session := authedSession(RoleStudent)
	gw := NewGateway(srv.URL, session)

	_, err := gw.Call(context.Background(), http.MethodGet, "/api/courses", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestGatewayOmitsBearerWhenUnauthenticated(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, NewSession())

	_, err := gw.Call(context.Background(), http.MethodPost, "/api/auth/login/student", map[string]string{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestGatewayServerMessageOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"Course ID is already in use!"}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, authedSession(RoleTeacher))

	_, err := gw.Call(context.Background(), http.MethodPost, "/api/courses", map[string]string{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusConflict, reqErr.Status)
	assert.Equal(t, "Course ID is already in use!", reqErr.Message)
}

func TestGatewaySynthesizesMessageForUnparseableFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, authedSession(RoleAdmin))

	_, err := gw.Call(context.Background(), http.MethodGet, "/api/courses/pending", nil)
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.Status)
	assert.Equal(t, "request failed with status 502", reqErr.Message)
}

func TestGatewayTreatsNonJSONSuccessAsEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, authedSession(RoleStudent))

	raw, err := gw.Call(context.Background(), http.MethodGet, "/api/courses", nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("{}"), raw)
}

func TestGatewayNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	gw := NewGateway(srv.URL, authedSession(RoleStudent))

	_, err := gw.Call(context.Background(), http.MethodGet, "/api/courses", nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGatewayCallMessageExtractsConfirmation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Course CS101 has been approved"}`))
	}))
	defer srv.Close()

	gw := NewGateway(srv.URL, authedSession(RoleAdmin))

	msg, err := gw.CallMessage(context.Background(), http.MethodPut, "/api/courses/CS101/approve", nil)
	require.NoError(t, err)
	assert.Equal(t, "Course CS101 has been approved", msg)
}
