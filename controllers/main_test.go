package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"elearn/config"
	"elearn/middleware"
	"elearn/models"
	"elearn/routers"
	"elearn/testutils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupApp builds the full route surface against an isolated test database
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	config.LoadConfig()
	cfg := *config.AppConfig
	cfg.UploadDir = t.TempDir()

	db := testutils.SetupTestDB(t)
	app := routers.NewApp(db, &cfg)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

// adminToken creates an ADMIN user and a matching bearer token
func adminToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	admin := testutils.CreateTestUser(t, db, testutils.WithRole(models.RoleAdmin))
	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email)
	require.NoError(t, err)
	return token
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// userToken creates a regular user and a matching bearer token
func userToken(t *testing.T, db *gorm.DB) string {
	t.Helper()

	user := testutils.CreateTestUser(t, db)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return token
}
