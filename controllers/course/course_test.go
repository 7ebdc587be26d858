package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	courseRoutes "coursehub/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "test-secret",
		SaltRound: bcrypt.MinCost,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func seedUsers(t *testing.T) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	db := database.Database.Db
	require.NoError(t, db.Create(&models.Teacher{TeacherID: "T001", Name: "Grace", Title: "Professor", PasswordHash: string(hash)}).Error)
	require.NoError(t, db.Create(&models.Student{StudentID: "2023001", Name: "Ada", PasswordHash: string(hash)}).Error)
	require.NoError(t, db.Create(&models.Administrator{AdminID: "A001", Name: "Root", PasswordHash: string(hash)}).Error)
}

func tokenFor(t *testing.T, id, name, role string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(id, name, role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestCourseModerationAndEnrollmentFlow(t *testing.T) {
	app := setupApp(t)
	seedUsers(t)

	teacherToken := tokenFor(t, "T001", "Grace", models.RoleTeacher)
	studentToken := tokenFor(t, "2023001", "Ada", models.RoleStudent)
	adminToken := tokenFor(t, "A001", "Root", models.RoleAdmin)

	// Teacher submits a course; it starts pending.
	resp, _ := doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id":   "CS101",
		"course_name": "Algorithms",
		"hours":       48,
		"credits":     4.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := doRequest(t, app, http.MethodGet, "/api/courses/my", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var myCourses []models.Course
	require.NoError(t, json.Unmarshal(raw, &myCourses))
	require.Len(t, myCourses, 1)
	assert.Equal(t, models.StatusPending, myCourses[0].ApprovalStatus)

	// Not yet visible in the public approved list.
	resp, raw = doRequest(t, app, http.MethodGet, "/api/courses", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var approved []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &approved))
	assert.Empty(t, approved)

	// Duplicate course id is rejected.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id":   "CS101",
		"course_name": "Algorithms again",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Admin queue holds the submission, with the teacher's name joined in.
	resp, raw = doRequest(t, app, http.MethodGet, "/api/courses/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pending []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "CS101", pending[0]["course_id"])
	assert.Equal(t, "Grace", pending[0]["teacher_name"])

	// Approve moves it out of the queue and into the approved list.
	resp, _ = doRequest(t, app, http.MethodPut, "/api/courses/CS101/approve", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Approving a non-pending course conflicts; the transition is one-way.
	resp, raw = doRequest(t, app, http.MethodPut, "/api/courses/CS101/approve", adminToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var msg map[string]string
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Contains(t, msg["message"], "no longer pending")

	resp, _ = doRequest(t, app, http.MethodPut, "/api/courses/CS999/approve", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = doRequest(t, app, http.MethodGet, "/api/courses/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &pending))
	assert.Empty(t, pending)

	resp, raw = doRequest(t, app, http.MethodGet, "/api/courses", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &approved))
	require.Len(t, approved, 1)
	assert.Equal(t, "CS101", approved[0]["course_id"])
	assert.Equal(t, "Grace", approved[0]["teacher_name"])

	// Student selects the course; duplicates conflict.
	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses/CS101/select", studentToken, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses/CS101/select", studentToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, raw = doRequest(t, app, http.MethodGet, "/api/selections/my", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var selections []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &selections))
	require.Len(t, selections, 1)
	assert.Equal(t, "CS101", selections[0]["course_id"])
	assert.Equal(t, "Grace", selections[0]["teacher_name"])

	// Deselect removes the enrollment; a second attempt finds nothing.
	resp, _ = doRequest(t, app, http.MethodDelete, "/api/selections/CS101", studentToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, "/api/selections/CS101", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSelectRequiresApprovedCourse(t *testing.T) {
	app := setupApp(t)
	seedUsers(t)

	teacherToken := tokenFor(t, "T001", "Grace", models.RoleTeacher)
	studentToken := tokenFor(t, "2023001", "Ada", models.RoleStudent)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id":   "CS201",
		"course_name": "Databases",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Still pending: selection must fail and leave no row behind.
	resp, raw := doRequest(t, app, http.MethodPost, "/api/courses/CS201/select", studentToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var msg map[string]string
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Contains(t, msg["message"], "not approved")

	var count int64
	database.Database.Db.Model(&models.Selection{}).Count(&count)
	assert.Zero(t, count)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses/CS999/select", studentToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCourseRoutesEnforceRoles(t *testing.T) {
	app := setupApp(t)
	seedUsers(t)

	studentToken := tokenFor(t, "2023001", "Ada", models.RoleStudent)
	teacherToken := tokenFor(t, "T001", "Grace", models.RoleTeacher)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/courses", studentToken, fiber.Map{
		"course_id":   "CS301",
		"course_name": "Networks",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodGet, "/api/courses/pending", teacherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses/CS101/select", teacherToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// No token at all is unauthorized.
	resp, _ = doRequest(t, app, http.MethodGet, "/api/courses", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUploadCourseValidation(t *testing.T) {
	app := setupApp(t)
	seedUsers(t)

	teacherToken := tokenFor(t, "T001", "Grace", models.RoleTeacher)

	resp, _ := doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id": "CS401",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id":   "CS 401",
		"course_name": "Operating Systems",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodPost, "/api/courses", teacherToken, fiber.Map{
		"course_id":   "CS401",
		"course_name": "Operating Systems",
		"hours":       -5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
