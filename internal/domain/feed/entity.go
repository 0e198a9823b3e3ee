package feed

import "time"

type Post struct {
	ID         string
	AuthorID   string
	AuthorName string
	Content    string
	ImageURL   *string
	CreatedAt  time.Time
}

type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityHigh Priority = "high"
)

type Announcement struct {
	ID        string
	Content   string
	Priority  Priority
	CreatedAt time.Time
}
