package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

const (
	maxBugTitleLen       = 200
	maxBugDescriptionLen = 4000
	maxBugPageURLLen     = 2000
)

type BugService interface {
	Create(ctx context.Context, title, description, pageURL string) (*types.BugReport, error)
	List(ctx context.Context, status string) ([]*types.BugReport, error)
	// SetStatus moves a report between "open" and "resolved", stamping or
	// clearing ResolvedAt accordingly.
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*types.BugReport, error)
}

type bugService struct {
	db      *gorm.DB
	log     *logger.Logger
	bugRepo repos.BugReportRepo
}

func NewBugService(db *gorm.DB, baseLog *logger.Logger, bugRepo repos.BugReportRepo) BugService {
	return &bugService{
		db:      db,
		log:     baseLog.With("service", "BugService"),
		bugRepo: bugRepo,
	}
}

func (s *bugService) Create(ctx context.Context, title, description, pageURL string) (*types.BugReport, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}

	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	pageURL = strings.TrimSpace(pageURL)

	if title == "" {
		return nil, apierr.Validation("Title is required")
	}
	if description == "" {
		return nil, apierr.Validation("Description is required")
	}
	if pageURL == "" {
		return nil, apierr.Validation("Page URL is required")
	}
	if len(title) > maxBugTitleLen || len(description) > maxBugDescriptionLen || len(pageURL) > maxBugPageURLLen {
		return nil, apierr.Validation("Field length limit exceeded")
	}

	row := &types.BugReport{
		ID:          uuid.New(),
		UserID:      rd.UserID,
		Title:       title,
		Description: description,
		PageURL:     pageURL,
		Status:      types.BugStatusOpen,
	}
	created, err := s.bugRepo.Create(ctx, nil, []*types.BugReport{row})
	if err != nil {
		s.log.Warn("Create bug report failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}
	return created[0], nil
}

func (s *bugService) List(ctx context.Context, status string) ([]*types.BugReport, error) {
	return s.bugRepo.GetAll(ctx, nil, status)
}

func (s *bugService) SetStatus(ctx context.Context, id uuid.UUID, status string) (*types.BugReport, error) {
	if status != types.BugStatusOpen && status != types.BugStatusResolved {
		return nil, apierr.Validation("Status must be open or resolved")
	}

	bugs, err := s.bugRepo.GetByIDs(ctx, nil, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	if len(bugs) == 0 || bugs[0] == nil {
		return nil, apierr.NotFound("bug_not_found", "Bug not found")
	}
	bug := bugs[0]

	bug.Status = status
	if status == types.BugStatusResolved {
		now := time.Now()
		bug.ResolvedAt = &now
	} else {
		bug.ResolvedAt = nil
	}

	if err := s.bugRepo.Save(ctx, nil, bug); err != nil {
		s.log.Warn("SetStatus save failed", "error", err, "bug_id", id)
		return nil, err
	}
	return bug, nil
}
