package domain

import (
	"time"
)

const (
	AnnouncementListLimit = 10
)

var (
	MessageSuccessPostAnnouncement = "New announcement posted"
	MessageFailedPostAnnouncement  = "Please fill the form correctly"
)

type (
	AnnouncementRequest struct {
		Link    string `form:"link" validate:"omitempty,url,max=2048"`
		Content string `form:"content" validate:"required,max=2000"`
	}

	Announcement struct {
		Username    string
		Link        string
		Description string
		CreatedAt   time.Time
	}
)
