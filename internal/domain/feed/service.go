package feed

import "context"

type FeedService interface {
	CreatePost(ctx context.Context, authorID string, req CreatePostRequest) (PostResponse, error)
	ListPosts(ctx context.Context, limit int) ([]PostResponse, error)
	CreateAnnouncement(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)
	ListAnnouncements(ctx context.Context, limit int) ([]AnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}
