package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

func newBugServiceForTest(t *testing.T) BugService {
	t.Helper()
	db := newTestDB(t)
	log := testLog()
	return NewBugService(db, log, repos.NewBugReportRepo(db, log))
}

func TestBugCreate(t *testing.T) {
	svc := newBugServiceForTest(t)
	userID := uuid.New()
	ctx := authedCtx(userID)

	row, err := svc.Create(ctx, "  Broken toggle  ", "Checkbox does not respond", "/subjects/amc1")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if row.Title != "Broken toggle" {
		t.Errorf("Title = %q, want trimmed", row.Title)
	}
	if row.Status != types.BugStatusOpen {
		t.Errorf("Status = %q, want open", row.Status)
	}
	if row.ResolvedAt != nil {
		t.Error("new report must not carry ResolvedAt")
	}
	if row.UserID != userID {
		t.Errorf("UserID = %v, want %v", row.UserID, userID)
	}
}

func TestBugCreateValidation(t *testing.T) {
	svc := newBugServiceForTest(t)
	ctx := authedCtx(uuid.New())

	cases := []struct {
		name        string
		title       string
		description string
		pageURL     string
	}{
		{name: "empty_title", title: "  ", description: "d", pageURL: "/p"},
		{name: "empty_description", title: "t", description: "", pageURL: "/p"},
		{name: "empty_page_url", title: "t", description: "d", pageURL: " "},
		{name: "title_too_long", title: strings.Repeat("a", 201), description: "d", pageURL: "/p"},
		{name: "description_too_long", title: "t", description: strings.Repeat("a", 4001), pageURL: "/p"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.title, tc.description, tc.pageURL)
			assertAPIErr(t, err, 400, "validation_failed")
		})
	}
}

func TestBugStatusTransitions(t *testing.T) {
	svc := newBugServiceForTest(t)
	ctx := authedCtx(uuid.New())

	row, err := svc.Create(ctx, "Crash on login", "500 from /api/auth/login", "/login")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	resolved, err := svc.SetStatus(ctx, row.ID, types.BugStatusResolved)
	if err != nil {
		t.Fatalf("SetStatus resolved: %v", err)
	}
	if resolved.Status != types.BugStatusResolved || resolved.ResolvedAt == nil {
		t.Errorf("resolved report = status %q, resolvedAt %v", resolved.Status, resolved.ResolvedAt)
	}

	// Reopening clears the resolution timestamp.
	reopened, err := svc.SetStatus(ctx, row.ID, types.BugStatusOpen)
	if err != nil {
		t.Fatalf("SetStatus open: %v", err)
	}
	if reopened.Status != types.BugStatusOpen || reopened.ResolvedAt != nil {
		t.Errorf("reopened report = status %q, resolvedAt %v", reopened.Status, reopened.ResolvedAt)
	}

	_, err = svc.SetStatus(ctx, row.ID, "closed")
	assertAPIErr(t, err, 400, "validation_failed")

	_, err = svc.SetStatus(ctx, uuid.New(), types.BugStatusResolved)
	assertAPIErr(t, err, 404, "bug_not_found")
}

func TestBugListFiltersByStatus(t *testing.T) {
	svc := newBugServiceForTest(t)
	ctx := authedCtx(uuid.New())

	first, err := svc.Create(ctx, "First", "d", "/a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Create(ctx, "Second", "d", "/b"); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.SetStatus(ctx, first.ID, types.BugStatusResolved); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all reports = %d, want 2", len(all))
	}

	open, err := svc.List(ctx, types.BugStatusOpen)
	if err != nil {
		t.Fatalf("List open: %v", err)
	}
	if len(open) != 1 || open[0].Title != "Second" {
		t.Errorf("open reports = %+v, want only the second", open)
	}

	resolved, err := svc.List(ctx, types.BugStatusResolved)
	if err != nil {
		t.Fatalf("List resolved: %v", err)
	}
	if len(resolved) != 1 || resolved[0].Title != "First" {
		t.Errorf("resolved reports = %+v, want only the first", resolved)
	}
}
