package service

import (
	"context"
	"encoding/json"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/pkg/utils"
	"tradeverse/types"

	"gorm.io/gorm"
)

var _ IReadingListService = (*ReadingListService)(nil)

type IReadingListService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateReadingListRequest) (uint64, error)
	Update(ctx context.Context, userID uint64, listID uint64, req *types.UpdateReadingListRequest) error
	Delete(ctx context.Context, userID uint64, listID uint64) error
	List(ctx context.Context, userID uint64) ([]*models.ReadingList, error)
	AddPost(ctx context.Context, userID uint64, listID, postID uint64) error
	RemovePost(ctx context.Context, userID uint64, listID, postID uint64) error
	ListPosts(ctx context.Context, userID uint64, listID uint64) ([]*types.PostItem, error)
}

type ReadingListService struct {
	DB          *gorm.DB
	ListDAO     *dao.ReadingListDAO
	ListPostDAO *dao.ReadingListPostDAO
	PostDAO     *dao.PostDAO
	StatsDAO    *dao.PostStatsDAO
}

// ownedList 加载清单并校验归属
func (s *ReadingListService) ownedList(ctx context.Context, userID, listID uint64) (*models.ReadingList, error) {
	list, err := s.ListDAO.FindById(ctx, listID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "清单不存在")
		}
		return nil, err
	}
	if list.UserID != userID {
		return nil, response.NewError(403, "没有权限操作他人的清单")
	}
	return list, nil
}

func (s *ReadingListService) Create(ctx context.Context, userID uint64, req *types.CreateReadingListRequest) (uint64, error) {
	list := &models.ReadingList{
		ID:          uint64(snowflake.GenID()),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := s.ListDAO.Create(ctx, list); err != nil {
		return 0, err
	}
	return list.ID, nil
}

func (s *ReadingListService) Update(ctx context.Context, userID uint64, listID uint64, req *types.UpdateReadingListRequest) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	_, err := s.ListDAO.UpdateById(ctx, listID, updates)
	return err
}

// Delete 删除清单和它的全部关联
func (s *ReadingListService) Delete(ctx context.Context, userID uint64, listID uint64) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", listID).Delete(&models.ReadingList{}).Error; err != nil {
			return err
		}
		return tx.Where("list_id = ?", listID).Delete(&models.ReadingListPost{}).Error
	})
}

// List 可见清单：公开的 + 自己的
func (s *ReadingListService) List(ctx context.Context, userID uint64) ([]*models.ReadingList, error) {
	return s.ListDAO.ListVisible(ctx, userID)
}

// AddPost 收录帖子，帖子必须公开可见；重复收录直接返回成功
func (s *ReadingListService) AddPost(ctx context.Context, userID uint64, listID, postID uint64) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}

	post, err := s.PostDAO.GetVisible(ctx, postID, time.Now())
	if err != nil {
		return err
	}
	if post == nil {
		return response.NewError(404, "帖子不存在")
	}

	_, err = s.ListPostDAO.Add(ctx, listID, postID)
	return err
}

func (s *ReadingListService) RemovePost(ctx context.Context, userID uint64, listID, postID uint64) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	_, err := s.ListPostDAO.Remove(ctx, listID, postID)
	return err
}

// ListPosts 清单内容。公开清单任何人可看，私密清单只有主人可看；
// 收录后下线的帖子不展示
func (s *ReadingListService) ListPosts(ctx context.Context, userID uint64, listID uint64) ([]*types.PostItem, error) {
	list, err := s.ListDAO.FindById(ctx, listID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "清单不存在")
		}
		return nil, err
	}
	if !list.IsPublic && list.UserID != userID {
		return nil, response.NewError(404, "清单不存在")
	}

	postIDs, err := s.ListPostDAO.ListPostIDs(ctx, listID)
	if err != nil {
		return nil, err
	}

	posts, err := s.PostDAO.FindVisibleByIDs(ctx, postIDs, time.Now())
	if err != nil {
		return nil, err
	}

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
