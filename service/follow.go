package service

import (
	"context"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/types"
)

var _ IFollowService = (*FollowService)(nil)

type IFollowService interface {
	Toggle(ctx context.Context, followerID uint64, followedID uint64) (*types.ToggleResponse, error)
	GetFollowingList(ctx context.Context, userID uint64, req *types.GetFollowingListRequest) (*types.GetFollowingListResponse, error)
	GetFollowStats(ctx context.Context, userID uint64) (*types.FollowStats, error)
}

type FollowService struct {
	UsersDAO        *dao.Users
	FollowDAO       *dao.UserFollowDAO
	StatsDAO        *dao.UserStatsDAO
	ActivityService IActivityService
}

// Toggle 关注开关。不允许关注自己；关注记录和双方计数在同一事务内变化
func (s *FollowService) Toggle(ctx context.Context, followerID uint64, followedID uint64) (*types.ToggleResponse, error) {
	if followerID == followedID {
		return nil, response.NewError(400, "不能关注自己")
	}

	if _, err := s.UsersDAO.FindById(ctx, followedID); err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "用户不存在")
		}
		return nil, err
	}

	following, err := s.FollowDAO.Toggle(ctx, followerID, followedID)
	if err != nil {
		return nil, err
	}

	if following {
		s.ActivityService.Record(ctx, followerID, models.ActivityFollow, 0, followedID)
	}

	resp := &types.ToggleResponse{State: following, Action: "unfollowed"}
	if following {
		resp.Action = "followed"
	}
	if count, err := s.FollowDAO.GetFollowerCount(ctx, followedID); err == nil {
		resp.Count = count
	}
	return resp, nil
}

// GetFollowingList 关注列表，顺带标记互相关注
func (s *FollowService) GetFollowingList(ctx context.Context, userID uint64, req *types.GetFollowingListRequest) (*types.GetFollowingListResponse, error) {
	req.Normalize()
	rows, total, err := s.FollowDAO.GetFollowingList(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		row.IsMutual, _ = s.FollowDAO.IsFollowing(ctx, row.UserID, userID)
	}
	return &types.GetFollowingListResponse{Following: rows, Total: total}, nil
}

func (s *FollowService) GetFollowStats(ctx context.Context, userID uint64) (*types.FollowStats, error) {
	followers, err := s.FollowDAO.GetFollowerCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowDAO.GetFollowingCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.FollowStats{FollowerCount: followers, FollowingCount: following}, nil
}
