package service

import (
	"context"
	"encoding/json"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/pkg/utils"
	"tradeverse/types"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	Toggle(ctx context.Context, postID uint64, userID uint64) (*types.ToggleResponse, error)
	ListBookmarks(ctx context.Context, userID uint64, req *types.PageRequest) (*types.ListPostsResponse, error)
}

type BookmarkService struct {
	PostDAO         *dao.PostDAO
	BookmarkDAO     *dao.PostBookmarkDAO
	StatsDAO        *dao.PostStatsDAO
	ActivityService IActivityService
}

// Toggle 收藏开关，语义同点赞
func (s *BookmarkService) Toggle(ctx context.Context, postID uint64, userID uint64) (*types.ToggleResponse, error) {
	post, err := s.PostDAO.GetVisible(ctx, postID, time.Now())
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(404, "帖子不存在")
	}

	bookmarked, err := s.BookmarkDAO.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if bookmarked && post.UserID != userID {
		s.ActivityService.Record(ctx, userID, models.ActivityBookmark, postID, post.UserID)
	}

	resp := &types.ToggleResponse{State: bookmarked, Action: "unbookmarked"}
	if bookmarked {
		resp.Action = "bookmarked"
	}
	if stats, err := s.StatsDAO.GetByPostID(ctx, postID); err == nil && stats != nil {
		resp.Count = stats.BookmarkCount
	}
	return resp, nil
}

// ListBookmarks 我的收藏列表。收藏后转为私密或下线的帖子不再展示
func (s *BookmarkService) ListBookmarks(ctx context.Context, userID uint64, req *types.PageRequest) (*types.ListPostsResponse, error) {
	req.Normalize()
	postIDs, total, err := s.BookmarkDAO.ListPostIDsByUser(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	resp := &types.ListPostsResponse{Posts: make([]*types.PostItem, 0, len(postIDs)), Total: total}
	if len(postIDs) == 0 {
		return resp, nil
	}

	posts, err := s.PostDAO.FindVisibleByIDs(ctx, postIDs, time.Now())
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		stats, err := s.StatsDAO.GetByPostID(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		item := types.NewPostItem(post, stats, utils.ReadingTime(post.Content))
		_ = json.Unmarshal(post.Tags, &item.Tags)
		resp.Posts = append(resp.Posts, item)
	}
	return resp, nil
}
