package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type FeedServiceImpl struct {
	feedRepo   feed.FeedRepository
	workerRepo worker.WorkerRepository
	now        func() time.Time
}

func NewFeedService(feedRepo feed.FeedRepository, workerRepo worker.WorkerRepository) feed.FeedService {
	return &FeedServiceImpl{
		feedRepo:   feedRepo,
		workerRepo: workerRepo,
		now:        time.Now,
	}
}

func (s *FeedServiceImpl) CreatePost(ctx context.Context, authorID string, req feed.CreatePostRequest) (feed.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return feed.PostResponse{}, err
	}

	author, err := s.workerRepo.GetByID(ctx, authorID)
	if err != nil {
		return feed.PostResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return feed.PostResponse{}, fmt.Errorf("failed to generate post id: %w", err)
	}

	created, err := s.feedRepo.CreatePost(ctx, feed.Post{
		ID:         id.String(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CreatedAt:  s.now(),
	})
	if err != nil {
		return feed.PostResponse{}, fmt.Errorf("failed to create post: %w", err)
	}
	return feed.NewPostResponse(created), nil
}

func (s *FeedServiceImpl) ListPosts(ctx context.Context, limit int) ([]feed.PostResponse, error) {
	posts, err := s.feedRepo.ListPosts(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	result := make([]feed.PostResponse, 0, len(posts))
	for _, p := range posts {
		result = append(result, feed.NewPostResponse(p))
	}
	return result, nil
}

func (s *FeedServiceImpl) CreateAnnouncement(ctx context.Context, req feed.CreateAnnouncementRequest) (feed.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return feed.AnnouncementResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return feed.AnnouncementResponse{}, fmt.Errorf("failed to generate announcement id: %w", err)
	}

	created, err := s.feedRepo.CreateAnnouncement(ctx, feed.Announcement{
		ID:        id.String(),
		Content:   req.Content,
		Priority:  feed.Priority(req.Priority),
		CreatedAt: s.now(),
	})
	if err != nil {
		return feed.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return feed.NewAnnouncementResponse(created), nil
}

// ListAnnouncements returns high priority announcements first, newest first within a priority.
func (s *FeedServiceImpl) ListAnnouncements(ctx context.Context, limit int) ([]feed.AnnouncementResponse, error) {
	announcements, err := s.feedRepo.ListAnnouncements(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	result := make([]feed.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		result = append(result, feed.NewAnnouncementResponse(a))
	}
	return result, nil
}

func (s *FeedServiceImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	return s.feedRepo.DeleteAnnouncement(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
