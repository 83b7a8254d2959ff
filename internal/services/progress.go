package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

type ProgressService interface {
	// ApplySubject folds the live completion state of subject into progress,
	// mutating it in place. It does not persist anything.
	ApplySubject(progress *types.Progress, subject *types.Subject)
	CreateEmpty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, branch string) (*types.Progress, error)
	GetUserProgress(ctx context.Context) (*types.Progress, error)
	GetProgressByBranch(ctx context.Context, branch string) (*types.Progress, error)
}

type progressService struct {
	db           *gorm.DB
	log          *logger.Logger
	progressRepo repos.ProgressRepo
}

func NewProgressService(db *gorm.DB, baseLog *logger.Logger, progressRepo repos.ProgressRepo) ProgressService {
	return &progressService{
		db:           db,
		log:          baseLog.With("service", "ProgressService"),
		progressRepo: progressRepo,
	}
}

// ApplySubject recomputes the subject's entry from a full rescan of its
// modules rather than applying a delta, so a missed toggle can never leave
// the counters drifted. Module entries are created on first sight and
// updated in place afterwards; entries for modules that no longer exist are
// left alone.
func (s *progressService) ApplySubject(progress *types.Progress, subject *types.Subject) {
	if progress == nil || subject == nil {
		return
	}

	entry := progress.FindSubjectEntry(subject.ID)
	if entry == nil {
		progress.SubjectProgress = append(progress.SubjectProgress, types.SubjectProgressEntry{
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Modules:     []types.ModuleProgressEntry{},
		})
		entry = &progress.SubjectProgress[len(progress.SubjectProgress)-1]
	}

	totalQuestions := 0
	completedQuestions := 0
	for i := range subject.Modules {
		module := &subject.Modules[i]
		moduleTotal := len(module.Questions)
		moduleCompleted := 0
		for j := range module.Questions {
			if module.Questions[j].Completed {
				moduleCompleted++
			}
		}

		totalQuestions += moduleTotal
		completedQuestions += moduleCompleted

		updated := false
		for k := range entry.Modules {
			if entry.Modules[k].ModuleNumber == module.ModuleNumber {
				entry.Modules[k].TotalQuestions = moduleTotal
				entry.Modules[k].CompletedQuestions = moduleCompleted
				updated = true
				break
			}
		}
		if !updated {
			entry.Modules = append(entry.Modules, types.ModuleProgressEntry{
				ModuleID:           module.ID,
				ModuleNumber:       module.ModuleNumber,
				TotalQuestions:     moduleTotal,
				CompletedQuestions: moduleCompleted,
			})
		}
	}

	entry.TotalQuestions = totalQuestions
	entry.CompletedQuestions = completedQuestions

	progress.CalculateTotal()
}

func (s *progressService) CreateEmpty(ctx context.Context, tx *gorm.DB, userID uuid.UUID, branch string) (*types.Progress, error) {
	row := &types.Progress{
		ID:              uuid.New(),
		UserID:          userID,
		Branch:          branch,
		SubjectProgress: []types.SubjectProgressEntry{},
		TotalProgress:   0,
		LastUpdated:     time.Now(),
	}
	created, err := s.progressRepo.Create(ctx, tx, []*types.Progress{row})
	if err != nil {
		return nil, err
	}
	return created[0], nil
}

func (s *progressService) GetUserProgress(ctx context.Context) (*types.Progress, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}

	rows, err := s.progressRepo.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		s.log.Warn("GetUserProgress: load failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apierr.NotFound("progress_not_found", "Progress not found")
	}
	return rows[0], nil
}

func (s *progressService) GetProgressByBranch(ctx context.Context, branch string) (*types.Progress, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	if branch == "" {
		return nil, apierr.Validation("branch is required")
	}

	row, err := s.progressRepo.GetByUserAndBranch(ctx, nil, rd.UserID, branch)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.NotFound("progress_not_found", "Progress not found for this branch")
		}
		s.log.Warn("GetProgressByBranch: load failed", "error", err, "user_id", rd.UserID, "branch", branch)
		return nil, err
	}
	if row == nil {
		return nil, apierr.NotFound("progress_not_found", "Progress not found for this branch")
	}
	return row, nil
}
