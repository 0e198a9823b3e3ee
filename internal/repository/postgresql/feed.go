package postgresql

import (
	"context"
	"fmt"

	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
)

type feedRepositoryImpl struct {
	db *database.DB
}

func NewFeedRepository(db *database.DB) feed.FeedRepository {
	return &feedRepositoryImpl{db: db}
}

// CreatePost implements feed.FeedRepository.
func (r *feedRepositoryImpl) CreatePost(ctx context.Context, p feed.Post) (feed.Post, error) {
	q := GetQuerier(ctx, r.db)

	var created feed.Post
	err := q.QueryRow(ctx, `
		INSERT INTO posts (id, author_id, author_name, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, author_id, author_name, content, image_url, created_at
	`, p.ID, p.AuthorID, p.AuthorName, p.Content, p.ImageURL, p.CreatedAt).Scan(
		&created.ID,
		&created.AuthorID,
		&created.AuthorName,
		&created.Content,
		&created.ImageURL,
		&created.CreatedAt,
	)
	if err != nil {
		return feed.Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return created, nil
}

// ListPosts implements feed.FeedRepository.
func (r *feedRepositoryImpl) ListPosts(ctx context.Context, limit int) ([]feed.Post, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, author_id, author_name, content, image_url, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []feed.Post
	for rows.Next() {
		var p feed.Post
		if err := rows.Scan(&p.ID, &p.AuthorID, &p.AuthorName, &p.Content, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// CreateAnnouncement implements feed.FeedRepository.
func (r *feedRepositoryImpl) CreateAnnouncement(ctx context.Context, a feed.Announcement) (feed.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	var created feed.Announcement
	err := q.QueryRow(ctx, `
		INSERT INTO announcements (id, content, priority, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, content, priority, created_at
	`, a.ID, a.Content, a.Priority, a.CreatedAt).Scan(&created.ID, &created.Content, &created.Priority, &created.CreatedAt)
	if err != nil {
		return feed.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}
	return created, nil
}

// ListAnnouncements implements feed.FeedRepository.
func (r *feedRepositoryImpl) ListAnnouncements(ctx context.Context, limit int) ([]feed.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, content, priority, created_at
		FROM announcements
		ORDER BY (priority = 'high') DESC, created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var announcements []feed.Announcement
	for rows.Next() {
		var a feed.Announcement
		if err := rows.Scan(&a.ID, &a.Content, &a.Priority, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}
	return announcements, rows.Err()
}

// DeleteAnnouncement implements feed.FeedRepository.
func (r *feedRepositoryImpl) DeleteAnnouncement(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return feed.ErrAnnouncementNotFound
	}
	return nil
}
