package seed

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cyclerise/cyclerise-backend/internal/branch"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

func newSeederForTest(t *testing.T) (*Seeder, repos.SubjectRepo) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&types.Subject{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	subjectRepo := repos.NewSubjectRepo(db, logger.NewNop())
	return NewSeeder(logger.NewNop(), subjectRepo), subjectRepo
}

func TestSeederCoversEveryBranch(t *testing.T) {
	seeder, subjectRepo := newSeederForTest(t)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, branchCode := range branch.USNCodes() {
		count, err := subjectRepo.CountByBranch(ctx, nil, branchCode)
		if err != nil {
			t.Fatalf("count for %s: %v", branchCode, err)
		}
		if count == 0 {
			t.Errorf("branch %s has no seeded subjects", branchCode)
		}
	}
}

func TestSeederIsIdempotent(t *testing.T) {
	seeder, subjectRepo := newSeederForTest(t)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	before, err := subjectRepo.CountByBranch(ctx, nil, "CS")
	if err != nil {
		t.Fatalf("count: %v", err)
	}

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	after, err := subjectRepo.CountByBranch(ctx, nil, "CS")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if after != before {
		t.Errorf("subject count changed across reruns: %d -> %d", before, after)
	}
}

func TestSeededSubjectShape(t *testing.T) {
	seeder, subjectRepo := newSeederForTest(t)
	ctx := context.Background()

	if err := seeder.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	subjects, err := subjectRepo.GetByBranchAndCycle(ctx, nil, "CS", "C")
	if err != nil {
		t.Fatalf("load CS chemistry cycle: %v", err)
	}
	if len(subjects) == 0 {
		t.Fatal("no subjects seeded for CS chemistry cycle")
	}

	var python *types.Subject
	for _, s := range subjects {
		if s.Cycle != "C" || s.Branch != "CS" {
			t.Errorf("subject %s carries cycle %q branch %q", s.Code, s.Cycle, s.Branch)
		}
		if len(s.Modules) != modulesPerSubject {
			t.Errorf("subject %s has %d modules, want %d", s.Code, len(s.Modules), modulesPerSubject)
		}
		for _, m := range s.Modules {
			if len(m.Questions) != questionsPerModule {
				t.Errorf("subject %s module %d has %d questions, want %d", s.Code, m.ModuleNumber, len(m.Questions), questionsPerModule)
			}
			for _, q := range m.Questions {
				if q.Completed {
					t.Errorf("subject %s seeded with a completed question", s.Code)
				}
				if q.ID == uuid.Nil {
					t.Errorf("subject %s has a question without an id", s.Code)
				}
			}
		}
		if s.Code == "PLC6" {
			python = s
		}
	}

	if python == nil {
		t.Fatal("PLC6 missing from CS chemistry cycle")
	}
	if python.Modules[0].Title != "Python Basics and Flow Control" {
		t.Errorf("PLC6 module 1 title = %q, want syllabus title", python.Modules[0].Title)
	}

	// Subjects without a published breakdown fall back to numbered modules.
	for _, s := range subjects {
		if s.Code == "CC08" {
			if s.Modules[2].Title != "Module 3" {
				t.Errorf("CC08 module 3 title = %q, want fallback", s.Modules[2].Title)
			}
		}
	}
}

func TestSubjectsForRespectsStreams(t *testing.T) {
	cases := []struct {
		name       string
		branchCode string
		cycle      string
		wantCode   string
		absentCode string
	}{
		{name: "cse_physics", branchCode: "CS", cycle: "P", wantCode: "APS", absentCode: "APC"},
		{name: "civil_physics", branchCode: "CV", cycle: "P", wantCode: "APC", absentCode: "APS"},
		{name: "ee_stream", branchCode: "EC", cycle: "C", wantCode: "APEC", absentCode: "PLC6"},
		{name: "common_subject", branchCode: "BT", cycle: "P", wantCode: "ETC13", absentCode: "PSC1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			codes := map[string]bool{}
			for _, cs := range subjectsFor(tc.branchCode, tc.cycle) {
				codes[cs.Code] = true
			}
			if !codes[tc.wantCode] {
				t.Errorf("%s missing from %s/%s", tc.wantCode, tc.branchCode, tc.cycle)
			}
			if codes[tc.absentCode] {
				t.Errorf("%s leaked into %s/%s", tc.absentCode, tc.branchCode, tc.cycle)
			}
		})
	}
}
