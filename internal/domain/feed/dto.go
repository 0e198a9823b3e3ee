package feed

import (
	"strings"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
)

const maxContentLength = 2000

type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
}

func (r *CreatePostRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if len(r.Content) > maxContentLength {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is too long"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateAnnouncementRequest struct {
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is required"})
	}
	if len(r.Content) > maxContentLength {
		errs = append(errs, validator.ValidationError{Field: "content", Message: "is too long"})
	}
	if r.Priority == "" {
		r.Priority = string(PriorityLow)
	}
	if r.Priority != string(PriorityLow) && r.Priority != string(PriorityHigh) {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be 'low' or 'high'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PostResponse struct {
	ID         string  `json:"id"`
	AuthorID   string  `json:"author_id"`
	AuthorName string  `json:"author_name"`
	Content    string  `json:"content"`
	ImageURL   *string `json:"image_url,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func NewPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

func NewAnnouncementResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        a.ID,
		Content:   a.Content,
		Priority:  string(a.Priority),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}
