package feed

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)
