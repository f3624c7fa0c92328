package service

import (
	"context"
	"fmt"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/types"

	"github.com/redis/go-redis/v9"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	Toggle(ctx context.Context, postID uint64, userID uint64) (*types.ToggleResponse, error)
}

type LikeService struct {
	PostDAO         *dao.PostDAO
	LikeDAO         *dao.PostLikeDAO
	StatsDAO        *dao.PostStatsDAO
	ActivityService IActivityService
	Redis           *redis.Client
}

// Toggle 点赞开关。点赞记录和计数在同一事务内变化，
// 加一把短锁挡住同一用户的连点。
func (s *LikeService) Toggle(ctx context.Context, postID uint64, userID uint64) (*types.ToggleResponse, error) {
	post, err := s.PostDAO.GetVisible(ctx, postID, time.Now())
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, response.NewError(404, "帖子不存在")
	}

	if s.Redis != nil {
		key := fmt.Sprintf("lock:post:like:%d:%d", postID, userID)
		ok, err := s.Redis.SetNX(ctx, key, 1, 3*time.Second).Result()
		if err == nil && !ok {
			return nil, response.NewError(429, "操作太频繁，请稍后再试")
		}
		defer s.Redis.Del(ctx, key)
	}

	liked, err := s.LikeDAO.Toggle(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	if liked && post.UserID != userID {
		s.ActivityService.Record(ctx, userID, models.ActivityLike, postID, post.UserID)
	}

	resp := &types.ToggleResponse{State: liked, Action: "unliked"}
	if liked {
		resp.Action = "liked"
	}
	if stats, err := s.StatsDAO.GetByPostID(ctx, postID); err == nil && stats != nil {
		resp.Count = stats.LikeCount
	}
	return resp, nil
}
