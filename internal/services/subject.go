package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
	"github.com/cyclerise/cyclerise-backend/internal/branch"
	"github.com/cyclerise/cyclerise-backend/internal/clients/redis"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

type SubjectService interface {
	GetSubjectsByBranch(ctx context.Context, branch, cycle string) ([]*types.Subject, error)
	GetSubjectByID(ctx context.Context, subjectID uuid.UUID) (*types.Subject, error)
	// ToggleQuestionCompletion inverts one question's completed flag, saves
	// the subject, then recomputes the caller's progress if they have a
	// progress row. Returns the post-toggle question.
	ToggleQuestionCompletion(ctx context.Context, subjectID uuid.UUID, moduleNumber int, questionID uuid.UUID) (*types.Question, error)
}

type subjectService struct {
	db              *gorm.DB
	log             *logger.Logger
	subjectRepo     repos.SubjectRepo
	progressRepo    repos.ProgressRepo
	progressService ProgressService
	cache           *redis.Cache
}

func NewSubjectService(
	db *gorm.DB,
	baseLog *logger.Logger,
	subjectRepo repos.SubjectRepo,
	progressRepo repos.ProgressRepo,
	progressService ProgressService,
	cache *redis.Cache,
) SubjectService {
	return &subjectService{
		db:              db,
		log:             baseLog.With("service", "SubjectService"),
		subjectRepo:     subjectRepo,
		progressRepo:    progressRepo,
		progressService: progressService,
		cache:           cache,
	}
}

func (s *subjectService) GetSubjectsByBranch(ctx context.Context, branchCode, cycle string) ([]*types.Subject, error) {
	if branchCode == "" {
		return nil, apierr.Validation("branch is required")
	}
	if cycle != "" && cycle != "P" && cycle != "C" {
		cycle = ""
	}

	// Subjects are stored under the short USN codes; callers may send either
	// form ("CSE" or "CS"). Keys use the normalized code so toggle
	// invalidation and population agree.
	branchCode = branch.ToUI(branchCode)

	key := redis.SubjectsByBranchKey(branchCode, cycle)
	var cached []*types.Subject
	if s.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	subjects, err := s.subjectRepo.GetByBranchAndCycle(ctx, nil, branchCode, cycle)
	if err != nil {
		s.log.Warn("GetSubjectsByBranch: load failed", "error", err, "branch", branchCode)
		return nil, err
	}

	s.cache.SetJSON(ctx, key, subjects, redis.SubjectsByBranchTTL)
	return subjects, nil
}

func (s *subjectService) GetSubjectByID(ctx context.Context, subjectID uuid.UUID) (*types.Subject, error) {
	if subjectID == uuid.Nil {
		return nil, apierr.Validation("subject id is required")
	}

	key := redis.SubjectDetailKey(subjectID)
	var cached types.Subject
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	subject, err := s.loadSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, subject, redis.SubjectDetailTTL)
	return subject, nil
}

// ToggleQuestionCompletion is deliberately an invert, not a set: the second
// call on the same question undoes the first. The subject save and the
// progress save are two independent writes with no lock or transaction
// between them; concurrent toggles on one subject are last-write-wins and a
// progress write can fail after the subject write persisted. That matches
// the reference behavior and is accepted.
func (s *subjectService) ToggleQuestionCompletion(ctx context.Context, subjectID uuid.UUID, moduleNumber int, questionID uuid.UUID) (*types.Question, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}

	subject, err := s.loadSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	module := subject.FindModule(moduleNumber)
	if module == nil {
		return nil, apierr.NotFound("module_not_found", "Module not found")
	}

	question := module.FindQuestion(questionID)
	if question == nil {
		return nil, apierr.NotFound("question_not_found", "Question not found")
	}

	question.Completed = !question.Completed

	if err := s.subjectRepo.Save(ctx, nil, subject); err != nil {
		s.log.Warn("ToggleQuestionCompletion: subject save failed", "error", err, "subject_id", subjectID)
		return nil, err
	}

	// Curriculum reads are served from cache; drop the keys touched by this
	// subject so the flip is visible before the TTL expires.
	s.cache.Delete(ctx, redis.SubjectDetailKey(subject.ID))
	s.cache.DeleteByPattern(ctx, redis.SubjectsByBranchPattern(subject.Branch))

	// Recompute against the just-mutated in-memory subject, not a re-read.
	// A caller without a progress row skips this silently; the question is
	// still flipped and returned.
	rows, err := s.progressRepo.GetByUserID(ctx, nil, rd.UserID)
	if err != nil {
		s.log.Warn("ToggleQuestionCompletion: progress lookup failed", "error", err, "user_id", rd.UserID)
		return question, nil
	}
	if len(rows) > 0 {
		progress := rows[0]
		s.progressService.ApplySubject(progress, subject)
		if err := s.progressRepo.Save(ctx, nil, progress); err != nil {
			s.log.Warn("ToggleQuestionCompletion: progress save failed", "error", err, "user_id", rd.UserID, "subject_id", subjectID)
		}
	}

	return question, nil
}

func (s *subjectService) loadSubject(ctx context.Context, subjectID uuid.UUID) (*types.Subject, error) {
	subjects, err := s.subjectRepo.GetByIDs(ctx, nil, []uuid.UUID{subjectID})
	if err != nil {
		s.log.Warn("loadSubject failed", "error", err, "subject_id", subjectID)
		return nil, err
	}
	if len(subjects) == 0 || subjects[0] == nil {
		return nil, apierr.NotFound("subject_not_found", "Subject not found")
	}
	return subjects[0], nil
}
