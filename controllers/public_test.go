package controllers_test

import (
	"net/http/httptest"
	"testing"

	"elearn/models"
	"elearn/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "GET", "/api/health", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestListModulesPublic(t *testing.T) {
	app, db := setupApp(t)

	testutils.CreateTestModule(t, db, testutils.WithOrder(2))
	testutils.CreateTestModule(t, db, testutils.WithOrder(1))
	testutils.CreateTestModule(t, db, testutils.WithPublished(false))

	resp := doRequest(t, app, "GET", "/api/modules", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var modules []models.Module
	decodeBody(t, resp, &modules)
	require.Len(t, modules, 2, "unpublished modules must never reach students")
	assert.Equal(t, 1, modules[0].OrderIndex)
	assert.Equal(t, 2, modules[1].OrderIndex)
	for _, m := range modules {
		assert.True(t, m.IsPublished)
	}
}

func TestListModulesPublicEmpty(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "GET", "/api/modules", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var modules []models.Module
	decodeBody(t, resp, &modules)
	assert.NotNil(t, modules)
	assert.Empty(t, modules)
}

func TestListLessonsPublic(t *testing.T) {
	app, db := setupApp(t)

	module := testutils.CreateTestModule(t, db)
	other := testutils.CreateTestModule(t, db)

	testutils.CreateTestLesson(t, db, module.ID, testutils.WithLessonOrder(2))
	testutils.CreateTestLesson(t, db, module.ID, testutils.WithLessonOrder(1))
	testutils.CreateTestLesson(t, db, module.ID, testutils.WithLessonPublished(false))
	testutils.CreateTestLesson(t, db, other.ID)

	resp := doRequest(t, app, "GET", "/api/lessons/"+itoa(module.ID), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lessons []models.Lesson
	decodeBody(t, resp, &lessons)
	require.Len(t, lessons, 2)
	assert.Equal(t, 1, lessons[0].OrderIndex)
	assert.Equal(t, 2, lessons[1].OrderIndex)
	for _, l := range lessons {
		assert.Equal(t, module.ID, l.ModuleID)
		assert.True(t, l.IsPublished)
	}
}

func TestListLessonsUnknownModuleIsEmptyList(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "GET", "/api/lessons/9999", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lessons []models.Lesson
	decodeBody(t, resp, &lessons)
	assert.Empty(t, lessons)
}

func TestPreflightOptions(t *testing.T) {
	app, _ := setupApp(t)

	// Preflight answers 200 with permissive headers on every path,
	// including admin routes, and never requires a token
	for _, path := range []string{"/api/modules", "/api/enrollments/5", "/api/admin/modules", "/api/admin/lessons/1"} {
		resp := doRequest(t, app, "OPTIONS", path, nil, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"), path)
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PATCH", path)
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization", path)
	}
}

func TestCORSHeadersOnSimpleRequest(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.Header.Set("Origin", "https://ui.example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestMethodNotAllowed(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "DELETE", "/api/modules", nil, "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCreateUser(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/users", map[string]interface{}{
		"username": "student1",
		"email":    "student1@example.com",
		"name":     "Student One",
		"password": "handled-externally",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, "student1", body["username"])
	assert.Equal(t, models.RoleUser, body["role"])
	assert.NotContains(t, body, "password", "password must never serialize")
}

func TestCreateUserValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "POST", "/api/users", map[string]interface{}{
		"username": "x",
		"email":    "not-an-email",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body["errors"])
}

func TestCreateUserDuplicate(t *testing.T) {
	app, db := setupApp(t)
	existing := testutils.CreateTestUser(t, db)

	resp := doRequest(t, app, "POST", "/api/users", map[string]interface{}{
		"username": existing.Username,
		"email":    existing.Email,
		"name":     "Someone Else",
	}, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGetUser(t *testing.T) {
	app, db := setupApp(t)
	user := testutils.CreateTestUser(t, db)

	resp := doRequest(t, app, "GET", "/api/user/"+itoa(user.ID), nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got models.User
	decodeBody(t, resp, &got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)

	resp = doRequest(t, app, "GET", "/api/user/9999", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUserEnrollments(t *testing.T) {
	app, db := setupApp(t)

	user := testutils.CreateTestUser(t, db)
	otherUser := testutils.CreateTestUser(t, db)
	testutils.CreateTestEnrollment(t, db, user.ID, 30)
	testutils.CreateTestEnrollment(t, db, otherUser.ID, 60)

	resp := doRequest(t, app, "GET", "/api/user/"+itoa(user.ID)+"/enrollments", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments []models.Enrollment
	decodeBody(t, resp, &enrollments)
	require.Len(t, enrollments, 1)
	assert.Equal(t, user.ID, enrollments[0].UserID)
	assert.Equal(t, 30, enrollments[0].Progress)
}

func TestListEnrollments(t *testing.T) {
	app, db := setupApp(t)

	user := testutils.CreateTestUser(t, db)
	testutils.CreateTestEnrollment(t, db, user.ID, 10)
	testutils.CreateTestEnrollment(t, db, user.ID, 90)

	resp := doRequest(t, app, "GET", "/api/enrollments", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollments []models.Enrollment
	decodeBody(t, resp, &enrollments)
	assert.Len(t, enrollments, 2)
}

func TestUpdateProgressCompletion(t *testing.T) {
	app, db := setupApp(t)

	user := testutils.CreateTestUser(t, db)
	enrollment := testutils.CreateTestEnrollment(t, db, user.ID, 50)

	// Reaching 100 sets completedAt in the same update
	resp := doRequest(t, app, "PATCH", "/api/enrollments/"+itoa(enrollment.ID), map[string]interface{}{
		"progress": 100,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.Enrollment
	decodeBody(t, resp, &updated)
	assert.Equal(t, 100, updated.Progress)
	require.NotNil(t, updated.CompletedAt)

	// Dropping below 100 clears it again
	resp = doRequest(t, app, "PATCH", "/api/enrollments/"+itoa(enrollment.ID), map[string]interface{}{
		"progress": 40,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	decodeBody(t, resp, &updated)
	assert.Equal(t, 40, updated.Progress)
	assert.Nil(t, updated.CompletedAt)
}

func TestUpdateProgressValidation(t *testing.T) {
	app, db := setupApp(t)

	user := testutils.CreateTestUser(t, db)
	enrollment := testutils.CreateTestEnrollment(t, db, user.ID, 0)

	for _, progress := range []int{-1, 101} {
		resp := doRequest(t, app, "PATCH", "/api/enrollments/"+itoa(enrollment.ID), map[string]interface{}{
			"progress": progress,
		}, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}

	resp := doRequest(t, app, "PATCH", "/api/enrollments/"+itoa(enrollment.ID), map[string]interface{}{}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProgressNotFound(t *testing.T) {
	app, _ := setupApp(t)

	resp := doRequest(t, app, "PATCH", "/api/enrollments/9999", map[string]interface{}{
		"progress": 100,
	}, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
