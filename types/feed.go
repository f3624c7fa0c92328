package types

import "time"

type ActivityItem struct {
	ID        uint64    `json:"id,string"`
	UserID    uint64    `json:"user_id,string"`
	Action    string    `json:"action"`
	PostID    uint64    `json:"post_id,string,omitempty"`
	TargetID  uint64    `json:"target_id,string,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityFeedResponse struct {
	Activities []*ActivityItem `json:"activities"`
}

type CategoryRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	IsPublic bool   `json:"is_public"`
}

type UploadResponse struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
