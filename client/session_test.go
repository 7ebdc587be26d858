package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilityTable(t *testing.T) {
	cases := []struct {
		action  Action
		student bool
		teacher bool
		admin   bool
	}{
		{ActionSubmitCourse, false, true, false},
		{ActionViewApproved, true, true, true},
		{ActionViewOwnCourses, false, true, false},
		{ActionModerateCourse, false, false, true},
		{ActionSelectCourse, true, false, false},
		{ActionPostMessage, true, false, false},
		{ActionModerateMessage, false, false, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.student, Can(tc.action, RoleStudent), "%s / student", tc.action)
		assert.Equal(t, tc.teacher, Can(tc.action, RoleTeacher), "%s / teacher", tc.action)
		assert.Equal(t, tc.admin, Can(tc.action, RoleAdmin), "%s / admin", tc.action)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()

	_, err := s.CurrentUser()
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.False(t, s.Authenticated())

	s.SetAuth("tok", User{ID: "2023001", Name: "Ada", Role: RoleStudent})
	user, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "2023001", user.ID)
	assert.Equal(t, RoleStudent, user.Role)
	assert.True(t, s.Authenticated())
	assert.Equal(t, "tok", s.Token())

	s.Clear()
	assert.False(t, s.Authenticated())
	assert.Empty(t, s.Token())
}

func TestRequireFailsFastWithoutNetwork(t *testing.T) {
	s := NewSession()
	s.SetAuth("tok", User{ID: "t1", Name: "Bob", Role: RoleTeacher})

	err := s.Require(ActionModerateCourse)
	var denied *PermissionDenied
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, RoleTeacher, denied.Role)
	assert.Equal(t, ActionModerateCourse, denied.Action)

	assert.NoError(t, s.Require(ActionSubmitCourse))
}
