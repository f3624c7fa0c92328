package service

import (
	"context"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/log"
	"tradeverse/pkg/snowflake"
	"tradeverse/types"

	"go.uber.org/zap"
)

// 动态流最多返回 50 条
const activityFeedLimit = 50

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	Record(ctx context.Context, userID uint64, action string, postID, targetID uint64)
	GetFeed(ctx context.Context, userID uint64) (*types.ActivityFeedResponse, error)
}

type ActivityService struct {
	ActivityDAO *dao.ActivityDAO
	FollowDAO   *dao.UserFollowDAO
}

// Record 追加一条动态。动态是主操作的副作用，写失败只记日志。
func (s *ActivityService) Record(ctx context.Context, userID uint64, action string, postID, targetID uint64) {
	item := &models.Activity{
		ID:        uint64(snowflake.GenID()),
		UserID:    userID,
		Action:    action,
		PostID:    postID,
		TargetID:  targetID,
		CreatedAt: time.Now(),
	}
	if err := s.ActivityDAO.Create(ctx, item); err != nil {
		log.L.Warn("record activity failed",
			zap.Uint64("user_id", userID),
			zap.String("action", action),
			zap.Error(err))
	}
}

// GetFeed 自己和关注的人的动态，按时间倒序截断
func (s *ActivityService) GetFeed(ctx context.Context, userID uint64) (*types.ActivityFeedResponse, error) {
	followedIDs, err := s.FollowDAO.ListFollowedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	userIDs := append(followedIDs, userID)

	items, err := s.ActivityDAO.ListFeed(ctx, userIDs, activityFeedLimit)
	if err != nil {
		return nil, err
	}

	resp := &types.ActivityFeedResponse{
		Activities: make([]*types.ActivityItem, 0, len(items)),
	}
	for _, item := range items {
		resp.Activities = append(resp.Activities, &types.ActivityItem{
			ID:        item.ID,
			UserID:    item.UserID,
			Action:    item.Action,
			PostID:    item.PostID,
			TargetID:  item.TargetID,
			CreatedAt: item.CreatedAt,
		})
	}
	return resp, nil
}
