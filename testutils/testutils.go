package testutils

import (
	"fmt"
	"testing"
	"time"

	"elearn/database"
	"elearn/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens an isolated in-memory SQLite database and migrates all
// application tables. The shared-cache DSN keeps the database alive across
// pooled connections for the lifetime of the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	return db
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithRole sets the user role
func WithRole(role string) UserOption {
	return func(u *models.User) {
		u.Role = role
	}
}

// CreateTestUser creates a user with unique username/email
func CreateTestUser(t *testing.T, db *gorm.DB, opts ...UserOption) *models.User {
	t.Helper()

	uniqueID := uuid.NewString()
	user := &models.User{
		Username: "test_user_" + uniqueID,
		Email:    fmt.Sprintf("test_%s@example.com", uniqueID),
		Name:     "Test User",
		Role:     models.RoleUser,
	}
	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// ModuleOption configures a test module
type ModuleOption func(*models.Module)

// WithPublished sets the published flag
func WithPublished(published bool) ModuleOption {
	return func(m *models.Module) {
		m.IsPublished = published
	}
}

// WithOrder sets the display order
func WithOrder(order int) ModuleOption {
	return func(m *models.Module) {
		m.OrderIndex = order
	}
}

// CreateTestModule creates a published module
func CreateTestModule(t *testing.T, db *gorm.DB, opts ...ModuleOption) *models.Module {
	t.Helper()

	module := &models.Module{
		Title:       "Test Module " + uuid.NewString()[:8],
		Description: "A module for testing",
		Duration:    "2 hours",
		OrderIndex:  1,
		IsPublished: true,
	}
	for _, opt := range opts {
		opt(module)
	}

	if err := db.Create(module).Error; err != nil {
		t.Fatalf("Failed to create test module: %v", err)
	}
	return module
}

// LessonOption configures a test lesson
type LessonOption func(*models.Lesson)

// WithLessonPublished sets the published flag
func WithLessonPublished(published bool) LessonOption {
	return func(l *models.Lesson) {
		l.IsPublished = published
	}
}

// WithLessonOrder sets the display order within the module
func WithLessonOrder(order int) LessonOption {
	return func(l *models.Lesson) {
		l.OrderIndex = order
	}
}

// CreateTestLesson creates a published lesson under the given module
func CreateTestLesson(t *testing.T, db *gorm.DB, moduleID uint, opts ...LessonOption) *models.Lesson {
	t.Helper()

	lesson := &models.Lesson{
		ModuleID:    moduleID,
		Title:       "Test Lesson " + uuid.NewString()[:8],
		Description: "A lesson for testing",
		Duration:    "15 min",
		OrderIndex:  1,
		IsPublished: true,
	}
	for _, opt := range opts {
		opt(lesson)
	}

	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("Failed to create test lesson: %v", err)
	}
	return lesson
}

// CreateTestEnrollment creates an enrollment for the given user
func CreateTestEnrollment(t *testing.T, db *gorm.DB, userID uint, progress int) *models.Enrollment {
	t.Helper()

	enrollment := &models.Enrollment{
		UserID:   userID,
		Enrolled: true,
		Progress: progress,
	}
	if progress == 100 {
		now := time.Now()
		enrollment.CompletedAt = &now
	}

	if err := db.Create(enrollment).Error; err != nil {
		t.Fatalf("Failed to create test enrollment: %v", err)
	}
	return enrollment
}
