package services

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
	"github.com/cyclerise/cyclerise-backend/internal/clients/redis"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

type FeedbackService interface {
	Create(ctx context.Context, rating int, message string) (*types.Feedback, error)
	GetMyLatest(ctx context.Context) (*types.Feedback, error)
	List(ctx context.Context) ([]*types.Feedback, error)
	Stats(ctx context.Context) (*types.FeedbackStats, error)
}

type feedbackService struct {
	db           *gorm.DB
	log          *logger.Logger
	feedbackRepo repos.FeedbackRepo
	cache        *redis.Cache
}

func NewFeedbackService(db *gorm.DB, baseLog *logger.Logger, feedbackRepo repos.FeedbackRepo, cache *redis.Cache) FeedbackService {
	return &feedbackService{
		db:           db,
		log:          baseLog.With("service", "FeedbackService"),
		feedbackRepo: feedbackRepo,
		cache:        cache,
	}
}

func (s *feedbackService) Create(ctx context.Context, rating int, message string) (*types.Feedback, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	if rating < 1 || rating > 5 {
		return nil, apierr.Validation("Rating must be between 1 and 5")
	}

	row := &types.Feedback{
		ID:      uuid.New(),
		UserID:  rd.UserID,
		Rating:  rating,
		Message: strings.TrimSpace(message),
	}
	created, err := s.feedbackRepo.Create(ctx, nil, []*types.Feedback{row})
	if err != nil {
		s.log.Warn("Create feedback failed", "error", err, "user_id", rd.UserID)
		return nil, err
	}

	// Stats are cached for an hour; a new rating makes them stale.
	s.cache.Delete(ctx, redis.FeedbackStatsKey())
	return created[0], nil
}

func (s *feedbackService) GetMyLatest(ctx context.Context) (*types.Feedback, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}
	return s.feedbackRepo.GetLatestByUserID(ctx, nil, rd.UserID)
}

func (s *feedbackService) List(ctx context.Context) ([]*types.Feedback, error) {
	return s.feedbackRepo.GetAll(ctx, nil)
}

func (s *feedbackService) Stats(ctx context.Context) (*types.FeedbackStats, error) {
	key := redis.FeedbackStatsKey()
	var cached types.FeedbackStats
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	total, avg, err := s.feedbackRepo.Stats(ctx, nil)
	if err != nil {
		return nil, err
	}

	stats := &types.FeedbackStats{
		Total:     total,
		AvgRating: math.Round(avg*10) / 10,
	}
	if total == 0 {
		stats.AvgRating = 0
	}

	s.cache.SetJSON(ctx, key, stats, redis.FeedbackStatsTTL)
	return stats, nil
}
