package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

func newProgressServiceForTest(t *testing.T) (ProgressService, repos.ProgressRepo) {
	t.Helper()
	db := newTestDB(t)
	progressRepo := repos.NewProgressRepo(db, testLog())
	return NewProgressService(db, testLog(), progressRepo), progressRepo
}

func emptyProgress(userID uuid.UUID) *types.Progress {
	return &types.Progress{
		ID:              uuid.New(),
		UserID:          userID,
		Branch:          "CSE",
		SubjectProgress: []types.SubjectProgressEntry{},
	}
}

func TestApplySubjectSingleModule(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)

	subject := buildSubject("Quantum Physics and Applications", "APS", "CS", "P", 5)
	subject.Modules[0].Questions[2].Completed = true

	progress := emptyProgress(uuid.New())
	svc.ApplySubject(progress, subject)

	if len(progress.SubjectProgress) != 1 {
		t.Fatalf("subject entries = %d, want 1", len(progress.SubjectProgress))
	}
	entry := progress.SubjectProgress[0]
	if entry.SubjectID != subject.ID || entry.SubjectName != subject.Name {
		t.Errorf("entry identity = (%v, %q)", entry.SubjectID, entry.SubjectName)
	}
	if entry.TotalQuestions != 5 || entry.CompletedQuestions != 1 {
		t.Errorf("subject counters = %d/%d, want 1/5", entry.CompletedQuestions, entry.TotalQuestions)
	}
	if len(entry.Modules) != 1 {
		t.Fatalf("module entries = %d, want 1", len(entry.Modules))
	}
	if entry.Modules[0].TotalQuestions != 5 || entry.Modules[0].CompletedQuestions != 1 {
		t.Errorf("module counters = %d/%d, want 1/5", entry.Modules[0].CompletedQuestions, entry.Modules[0].TotalQuestions)
	}
	if progress.TotalProgress != 20 {
		t.Errorf("TotalProgress = %d, want 20", progress.TotalProgress)
	}
	if progress.LastUpdated.IsZero() {
		t.Error("LastUpdated not stamped")
	}
}

func TestApplySubjectAcrossSubjects(t *testing.T) {
	// One subject fully completed, one untouched: 5/10 -> 50%.
	svc, _ := newProgressServiceForTest(t)

	done := buildSubject("Structured Programming in C", "PSC5", "CS", "P", 5)
	for i := range done.Modules[0].Questions {
		done.Modules[0].Questions[i].Completed = true
	}
	untouched := buildSubject("Python Programming", "PLC6", "CS", "C", 5)

	progress := emptyProgress(uuid.New())
	svc.ApplySubject(progress, done)
	svc.ApplySubject(progress, untouched)

	if len(progress.SubjectProgress) != 2 {
		t.Fatalf("subject entries = %d, want 2", len(progress.SubjectProgress))
	}
	if progress.TotalProgress != 50 {
		t.Errorf("TotalProgress = %d, want 50", progress.TotalProgress)
	}
}

func TestApplySubjectIsIdempotent(t *testing.T) {
	svc, _ := newProgressServiceForTest(t)

	subject := buildSubject("Applied Mechanics", "ESCO11", "CV", "C", 3, 4, 5)
	subject.Modules[1].Questions[0].Completed = true
	subject.Modules[2].Questions[4].Completed = true

	progress := emptyProgress(uuid.New())
	svc.ApplySubject(progress, subject)

	first := *progress
	firstEntries := make([]types.SubjectProgressEntry, len(progress.SubjectProgress))
	copy(firstEntries, progress.SubjectProgress)

	svc.ApplySubject(progress, subject)

	if progress.TotalProgress != first.TotalProgress {
		t.Errorf("TotalProgress changed on recompute: %d -> %d", first.TotalProgress, progress.TotalProgress)
	}
	if len(progress.SubjectProgress) != len(firstEntries) {
		t.Fatalf("subject entries grew: %d -> %d", len(firstEntries), len(progress.SubjectProgress))
	}
	entry := progress.SubjectProgress[0]
	if len(entry.Modules) != 3 {
		t.Fatalf("module entries = %d, want 3", len(entry.Modules))
	}
	for i, m := range entry.Modules {
		if m.TotalQuestions != firstEntries[0].Modules[i].TotalQuestions ||
			m.CompletedQuestions != firstEntries[0].Modules[i].CompletedQuestions {
			t.Errorf("module %d counters changed on recompute", m.ModuleNumber)
		}
	}
}

func TestCalculateTotalZeroQuestions(t *testing.T) {
	progress := emptyProgress(uuid.New())
	if got := progress.CalculateTotal(); got != 0 {
		t.Errorf("CalculateTotal() on empty progress = %d, want 0", got)
	}

	// An entry with zero totals must not divide by zero either.
	progress.SubjectProgress = append(progress.SubjectProgress, types.SubjectProgressEntry{
		SubjectID: uuid.New(),
	})
	if got := progress.CalculateTotal(); got != 0 {
		t.Errorf("CalculateTotal() with zero-total entry = %d, want 0", got)
	}
}

func TestCalculateTotalRounding(t *testing.T) {
	cases := []struct {
		name      string
		total     int
		completed int
		want      int
	}{
		{name: "exact_fifth", total: 5, completed: 1, want: 20},
		{name: "one_third", total: 3, completed: 1, want: 33},
		{name: "two_thirds", total: 3, completed: 2, want: 67},
		{name: "all_done", total: 7, completed: 7, want: 100},
		{name: "half_rounds_up", total: 8, completed: 1, want: 13},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := emptyProgress(uuid.New())
			p.SubjectProgress = []types.SubjectProgressEntry{{
				SubjectID:          uuid.New(),
				TotalQuestions:     tc.total,
				CompletedQuestions: tc.completed,
			}}
			if got := p.CalculateTotal(); got != tc.want {
				t.Errorf("CalculateTotal() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestGetProgressByBranch(t *testing.T) {
	svc, repo := newProgressServiceForTest(t)
	userID := uuid.New()
	ctx := authedCtx(userID)

	if _, err := svc.GetProgressByBranch(ctx, "CSE"); err == nil {
		t.Fatal("expected not found before creation")
	}

	if _, err := svc.CreateEmpty(ctx, nil, userID, "CSE"); err != nil {
		t.Fatalf("CreateEmpty: %v", err)
	}

	got, err := svc.GetProgressByBranch(ctx, "CSE")
	if err != nil {
		t.Fatalf("GetProgressByBranch: %v", err)
	}
	if got.UserID != userID || got.Branch != "CSE" || got.TotalProgress != 0 {
		t.Errorf("unexpected progress row: %+v", got)
	}

	// Another user's row stays invisible.
	other, err := repo.GetByUserAndBranch(ctx, nil, uuid.New(), "CSE")
	if err != nil {
		t.Fatalf("GetByUserAndBranch: %v", err)
	}
	if other != nil {
		t.Error("expected nil progress for unknown user")
	}
}
