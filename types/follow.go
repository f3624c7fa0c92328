package types

import "tradeverse/models"

type GetFollowingListRequest struct {
	PageRequest
}

type GetFollowingListResponse struct {
	Following []*models.FollowingUser `json:"following"`
	Total     int64                   `json:"total"`
}

type FollowStats struct {
	FollowerCount  int64 `json:"follower_count"`
	FollowingCount int64 `json:"following_count"`
}
