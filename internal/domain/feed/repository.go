package feed

import "context"

type FeedRepository interface {
	CreatePost(ctx context.Context, p Post) (Post, error)
	ListPosts(ctx context.Context, limit int) ([]Post, error)
	CreateAnnouncement(ctx context.Context, a Announcement) (Announcement, error)
	ListAnnouncements(ctx context.Context, limit int) ([]Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}
