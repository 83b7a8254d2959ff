package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cyclerise/cyclerise-backend/internal/handlers"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/middleware"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/services"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

// newTestServer wires the full stack over an in-memory database, the same
// graph cmd/main.go builds minus redis and seeding.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&types.User{},
		&types.Subject{},
		&types.Progress{},
		&types.Feedback{},
		&types.BugReport{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	log := logger.NewNop()
	userRepo := repos.NewUserRepo(db, log)
	subjectRepo := repos.NewSubjectRepo(db, log)
	progressRepo := repos.NewProgressRepo(db, log)
	feedbackRepo := repos.NewFeedbackRepo(db, log)
	bugRepo := repos.NewBugReportRepo(db, log)

	progressService := services.NewProgressService(db, log, progressRepo)
	authService := services.NewAuthService(db, log, userRepo, progressService, "router-test-secret", time.Hour, nil)
	subjectService := services.NewSubjectService(db, log, subjectRepo, progressRepo, progressService, nil)
	feedbackService := services.NewFeedbackService(db, log, feedbackRepo, nil)
	bugService := services.NewBugService(db, log, bugRepo)

	return NewRouter(RouterConfig{
		AuthHandler:     handlers.NewAuthHandler(authService),
		SubjectHandler:  handlers.NewSubjectHandler(log, subjectService),
		ProgressHandler: handlers.NewProgressHandler(progressService),
		FeedbackHandler: handlers.NewFeedbackHandler(feedbackService),
		BugHandler:      handlers.NewBugHandler(bugService),
		AuthMiddleware:  middleware.NewAuthMiddleware(log, authService),
	})
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t)
	w := doJSON(router, http.MethodGet, "/api/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Server is running" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	router := newTestServer(t)
	paths := []string{
		"/api/auth/profile",
		"/api/subjects/branch/CS",
		"/api/progress",
		"/api/feedback/mine",
	}
	for _, path := range paths {
		if w := doJSON(router, http.MethodGet, path, "", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("%s status = %d, want 401", path, w.Code)
		}
	}
}

func TestRegisterThenAuthenticatedFlow(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(router, http.MethodPost, "/api/auth/register", "",
		`{"usn":"1SI23CS001","email":"smoke@example.com","password":"secret1","branch":"CSE"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}
	var reg struct {
		Token string `json:"token"`
		User  struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &reg); err != nil {
		t.Fatalf("decode register body: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("register returned no token")
	}

	w = doJSON(router, http.MethodGet, "/api/auth/profile", reg.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("profile status = %d, body %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret1") {
		t.Error("profile response leaks the password")
	}

	// Registration created an empty progress row for the chosen branch.
	w = doJSON(router, http.MethodGet, "/api/progress", reg.Token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("progress status = %d, body %s", w.Code, w.Body.String())
	}

	// Plain users cannot reach the admin surface.
	for _, path := range []string{"/api/auth/users", "/api/feedback", "/api/bugs"} {
		if w := doJSON(router, http.MethodGet, path, reg.Token, ""); w.Code != http.StatusForbidden {
			t.Errorf("%s status = %d, want 403", path, w.Code)
		}
	}
}
