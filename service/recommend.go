package service

import (
	"context"
	"encoding/json"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/utils"
	"tradeverse/types"
)

const (
	recommendCap = 12 // 推荐条数上限
	recommendPad = 6  // 不足这个数时用全站热门补齐
)

var _ IRecommendService = (*RecommendService)(nil)

type IRecommendService interface {
	GetRecommendations(ctx context.Context, userID uint64) ([]*types.PostItem, error)
}

type RecommendService struct {
	PostDAO  *dao.PostDAO
	LikeDAO  *dao.PostLikeDAO
	StatsDAO *dao.PostStatsDAO
}

// GetRecommendations 基于点赞分类的推荐：取用户点赞过的分类下的热门帖子，
// 排除自己的和已点赞的；候选不足时用全站热门补齐
func (s *RecommendService) GetRecommendations(ctx context.Context, userID uint64) ([]*types.PostItem, error) {
	now := time.Now()

	likedIDs, err := s.LikeDAO.ListLikedPostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	categoryIDs, err := s.LikeDAO.ListLikedCategoryIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.PostDAO.ListRecommendCandidates(ctx, categoryIDs, userID, likedIDs, now, recommendCap)
	if err != nil {
		return nil, err
	}

	if len(posts) < recommendPad {
		exclude := make([]uint64, 0, len(likedIDs)+len(posts))
		exclude = append(exclude, likedIDs...)
		for _, post := range posts {
			exclude = append(exclude, post.ID)
		}
		padding, err := s.PostDAO.ListTopViewed(ctx, userID, exclude, now, recommendPad-len(posts))
		if err != nil {
			return nil, err
		}
		posts = append(posts, padding...)
	}
	if len(posts) > recommendCap {
		posts = posts[:recommendCap]
	}

	return s.toItems(ctx, posts)
}

func (s *RecommendService) toItems(ctx context.Context, posts []*models.Post) ([]*types.PostItem, error) {
	items := make([]*types.PostItem, 0, len(posts))
	for _, post := range posts {
		stats, err := s.StatsDAO.GetByPostID(ctx, post.ID)
		if err != nil {
			return nil, err
		}
		item := types.NewPostItem(post, stats, utils.ReadingTime(post.Content))
		_ = json.Unmarshal(post.Tags, &item.Tags)
		items = append(items, item)
	}
	return items, nil
}
