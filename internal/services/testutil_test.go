package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

// newTestDB opens a fresh in-memory database per test. The unique DSN keeps
// parallel tests from sharing state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func testLog() *logger.Logger {
	return logger.NewNop()
}

func authedCtx(userID uuid.UUID) context.Context {
	return requestdata.WithRequestData(context.Background(), &requestdata.RequestData{
		UserID:        userID,
		Branch:        "CSE",
		CurrentBranch: "CSE",
	})
}

// buildSubject assembles a subject with the given per-module question counts,
// all questions initially incomplete.
func buildSubject(name, code, branchCode, cycle string, questionsPerModule ...int) *types.Subject {
	modules := make([]types.Module, 0, len(questionsPerModule))
	for i, count := range questionsPerModule {
		questions := make([]types.Question, 0, count)
		for q := 0; q < count; q++ {
			questions = append(questions, types.Question{
				ID:    uuid.New(),
				Title: fmt.Sprintf("Question %d - Module %d", q+1, i+1),
			})
		}
		modules = append(modules, types.Module{
			ID:           uuid.New(),
			ModuleNumber: i + 1,
			Title:        fmt.Sprintf("Module %d", i+1),
			Questions:    questions,
		})
	}
	return &types.Subject{
		ID:      uuid.New(),
		Name:    name,
		Code:    code,
		Credits: 4,
		Cycle:   cycle,
		Branch:  branchCode,
		Modules: modules,
	}
}
