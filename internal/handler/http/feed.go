package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/handler/http/response"
)

type FeedHandler interface {
	ListPosts(w http.ResponseWriter, r *http.Request)
	CreatePost(w http.ResponseWriter, r *http.Request)
	ListAnnouncements(w http.ResponseWriter, r *http.Request)
	CreateAnnouncement(w http.ResponseWriter, r *http.Request)
	DeleteAnnouncement(w http.ResponseWriter, r *http.Request)
}

type FeedHandlerImpl struct {
	feedService feed.FeedService
}

func NewFeedHandler(feedService feed.FeedService) FeedHandler {
	return &FeedHandlerImpl{feedService: feedService}
}

// ListPosts implements FeedHandler.
func (h *FeedHandlerImpl) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.feedService.ListPosts(r.Context(), queryLimit(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, posts)
}

// CreatePost implements FeedHandler.
func (h *FeedHandlerImpl) CreatePost(w http.ResponseWriter, r *http.Request) {
	workerID, ok := currentWorkerID(w, r)
	if !ok {
		return
	}

	var req feed.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreatePost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	post, err := h.feedService.CreatePost(r.Context(), workerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Post published", post)
}

// ListAnnouncements implements FeedHandler.
func (h *FeedHandlerImpl) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.feedService.ListAnnouncements(r.Context(), queryLimit(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, announcements)
}

// CreateAnnouncement implements FeedHandler.
func (h *FeedHandlerImpl) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var req feed.CreateAnnouncementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAnnouncement decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	announcement, err := h.feedService.CreateAnnouncement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Announcement published", announcement)
}

// DeleteAnnouncement implements FeedHandler.
func (h *FeedHandlerImpl) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "announcement")
	if !ok {
		return
	}

	if err := h.feedService.DeleteAnnouncement(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Announcement deleted", nil)
}
