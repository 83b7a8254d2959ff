// Package seed populates the curriculum: one Subject per (code, branch,
// cycle) with five modules of five placeholder questions each. It runs at
// startup outside production and is idempotent per branch.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cyclerise/cyclerise-backend/internal/branch"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

const (
	modulesPerSubject  = 5
	questionsPerModule = 5
)

type Seeder struct {
	log         *logger.Logger
	subjectRepo repos.SubjectRepo
}

func NewSeeder(baseLog *logger.Logger, subjectRepo repos.SubjectRepo) *Seeder {
	return &Seeder{log: baseLog.With("service", "Seeder"), subjectRepo: subjectRepo}
}

// Run seeds every branch that has no subjects yet. Branches with existing
// rows are skipped so a restart never duplicates or resets completion flags.
func (s *Seeder) Run(ctx context.Context) error {
	for _, branchCode := range branch.USNCodes() {
		count, err := s.subjectRepo.CountByBranch(ctx, nil, branchCode)
		if err != nil {
			return fmt.Errorf("seed: count subjects for %s: %w", branchCode, err)
		}
		if count > 0 {
			continue
		}

		var rows []*types.Subject
		for _, cycle := range []string{"P", "C"} {
			for _, cs := range subjectsFor(branchCode, cycle) {
				rows = append(rows, buildSubject(cs, branchCode, cycle))
			}
		}

		if _, err := s.subjectRepo.Create(ctx, nil, rows); err != nil {
			return fmt.Errorf("seed: create subjects for %s: %w", branchCode, err)
		}
		s.log.Info("Seeded curriculum", "branch", branchCode, "subjects", len(rows))
	}
	return nil
}

func subjectsFor(branchCode, cycle string) []catalogSubject {
	catalog := cycleSubjects[cycle]
	if eeStreamBranches[branchCode] {
		catalog = eeStreamCycleSubjects[cycle]
	}

	var out []catalogSubject
	for _, cs := range catalog {
		if branchListed(cs.Branches, branchCode) {
			out = append(out, cs)
		}
	}
	return out
}

func branchListed(listed []string, branchCode string) bool {
	for _, b := range listed {
		if b == "ALL" || b == branchCode {
			return true
		}
	}
	return false
}

func buildSubject(cs catalogSubject, branchCode, cycle string) *types.Subject {
	titles := moduleTitlesByCode[cs.Code]

	modules := make([]types.Module, 0, modulesPerSubject)
	for moduleNum := 1; moduleNum <= modulesPerSubject; moduleNum++ {
		questions := make([]types.Question, 0, questionsPerModule)
		for qNum := 1; qNum <= questionsPerModule; qNum++ {
			questions = append(questions, types.Question{
				ID:          uuid.New(),
				Title:       fmt.Sprintf("Question %d - Module %d", qNum, moduleNum),
				Description: fmt.Sprintf("This is question %d in module %d", qNum, moduleNum),
			})
		}

		title := fmt.Sprintf("Module %d", moduleNum)
		if moduleNum-1 < len(titles) {
			title = titles[moduleNum-1]
		}

		modules = append(modules, types.Module{
			ID:           uuid.New(),
			ModuleNumber: moduleNum,
			Title:        title,
			Questions:    questions,
		})
	}

	return &types.Subject{
		ID:      uuid.New(),
		Name:    cs.Name,
		Code:    cs.Code,
		Credits: cs.Credits,
		Cycle:   cycle,
		Branch:  branchCode,
		Modules: modules,
	}
}
