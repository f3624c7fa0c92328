package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/log"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/pkg/utils"
	"tradeverse/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error)
	Update(ctx context.Context, userID uint64, isAdmin bool, postID uint64, req *types.UpdatePostRequest) error
	Delete(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error
	GetDetail(ctx context.Context, postID uint64, viewerID uint64) (*types.PostDetail, error)
	ListFeed(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResponse, error)
	ListPrivate(ctx context.Context, userID uint64, req *types.ListPostsRequest) (*types.ListPostsResponse, error)
	ListMine(ctx context.Context, userID uint64, req *types.ListPostsRequest) (*types.ListPostsResponse, error)
	Search(ctx context.Context, req *types.SearchPostsRequest) (*types.ListPostsResponse, error)
	ListSeries(ctx context.Context, seriesName string) ([]*types.PostItem, error)
}

type PostService struct {
	DB              *gorm.DB
	PostDAO         *dao.PostDAO
	StatsDAO        *dao.PostStatsDAO
	LikeDAO         *dao.PostLikeDAO
	BookmarkDAO     *dao.PostBookmarkDAO
	CategoryDAO     *dao.CategoryDAO
	UserStatsDAO    *dao.UserStatsDAO
	BadgeService    IBadgeService
	ActivityService IActivityService
	Redis           *redis.Client
}

// validateSchedule 定时发布必须带未来的时间点，校验失败返回业务错误
func validateSchedule(status int8, scheduledAt *time.Time, now time.Time) error {
	if status != models.PostStatusScheduled {
		return nil
	}
	if scheduledAt == nil {
		return response.NewError(400, "定时发布需要指定发布时间")
	}
	if !scheduledAt.After(now) {
		return response.NewError(400, "定时发布时间必须晚于当前时间")
	}
	return nil
}

func marshalTags(tags []string) datatypes.JSON {
	if len(tags) == 0 {
		tags = []string{}
	}
	data, _ := json.Marshal(tags)
	return data
}

// Create 创建帖子，帖子和统计行在同一事务内写入
func (s *PostService) Create(ctx context.Context, userID uint64, req *types.CreatePostRequest) (uint64, error) {
	if req.Title == "" || req.Content == "" {
		return 0, response.NewError(400, "标题和正文不能为空")
	}

	if _, err := s.CategoryDAO.FindById(ctx, req.CategoryID); err != nil {
		if dao.IsRecordNotFound(err) {
			return 0, response.NewError(400, "分类不存在")
		}
		return 0, err
	}

	status := req.Status
	if status == 0 {
		status = models.PostStatusDraft
	}
	visible := req.Visible
	if visible == 0 {
		visible = models.PostVisiblePublic
	}

	now := time.Now()
	if err := validateSchedule(status, req.ScheduledAt, now); err != nil {
		return 0, err
	}

	postID := uint64(snowflake.GenID())
	post := &models.Post{
		ID:          postID,
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Status:      status,
		Visible:     visible,
		Tags:        marshalTags(req.Tags),
		SeriesName:  req.SeriesName,
		SeriesOrder: req.SeriesOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if status == models.PostStatusScheduled {
		post.ScheduledAt = req.ScheduledAt
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		return tx.Create(&models.PostStats{
			PostID:    postID,
			CreatedAt: now,
			UpdatedAt: now,
		}).Error
	})
	if err != nil {
		return 0, err
	}

	if status == models.PostStatusPublished {
		s.afterPublish(ctx, userID, postID)
	}

	return postID, nil
}

// Update 编辑帖子，仅作者或管理员可操作；
// 草稿转发布会触发奖励逻辑
func (s *PostService) Update(ctx context.Context, userID uint64, isAdmin bool, postID uint64, req *types.UpdatePostRequest) error {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return response.NewError(404, "帖子不存在")
		}
		return err
	}
	if post.UserID != userID && !isAdmin {
		return response.NewError(403, "没有权限操作他人的帖子")
	}

	status := post.Status
	if req.Status != 0 {
		status = req.Status
	}

	now := time.Now()
	scheduledAt := post.ScheduledAt
	if req.ScheduledAt != nil {
		scheduledAt = req.ScheduledAt
	}
	if err := validateSchedule(status, scheduledAt, now); err != nil {
		return err
	}

	updates := map[string]any{
		"status":     status,
		"updated_at": now,
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Content != "" {
		updates["content"] = req.Content
	}
	if req.Excerpt != "" {
		updates["excerpt"] = req.Excerpt
	}
	if req.CategoryID != 0 {
		if _, err := s.CategoryDAO.FindById(ctx, req.CategoryID); err != nil {
			if dao.IsRecordNotFound(err) {
				return response.NewError(400, "分类不存在")
			}
			return err
		}
		updates["category_id"] = req.CategoryID
	}
	if req.Visible != 0 {
		updates["visible"] = req.Visible
	}
	if req.Tags != nil {
		updates["tags"] = marshalTags(req.Tags)
	}
	if req.SeriesName != "" {
		updates["series_name"] = req.SeriesName
		updates["series_order"] = req.SeriesOrder
	}
	if status == models.PostStatusScheduled {
		updates["scheduled_at"] = scheduledAt
	} else {
		updates["scheduled_at"] = nil
	}

	if _, err := s.PostDAO.UpdateById(ctx, postID, updates); err != nil {
		return err
	}

	// 非发布态转为发布态才触发奖励
	wasPublished := post.Status == models.PostStatusPublished
	if status == models.PostStatusPublished && !wasPublished {
		s.afterPublish(ctx, post.UserID, postID)
	}

	return nil
}

// Delete 删除帖子，仅作者或管理员可操作，关联清理交给外键
func (s *PostService) Delete(ctx context.Context, userID uint64, isAdmin bool, postID uint64) error {
	post, err := s.PostDAO.FindById(ctx, postID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return response.NewError(404, "帖子不存在")
		}
		return err
	}
	if post.UserID != userID && !isAdmin {
		return response.NewError(403, "没有权限操作他人的帖子")
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", postID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Where("post_id = ?", postID).Delete(&models.PostStats{}).Error
	})
}

// afterPublish 发布成功后的同步结算：重算发帖数、发徽章、写动态。
// 任何一步失败都不影响发布本身。
func (s *PostService) afterPublish(ctx context.Context, userID uint64, postID uint64) {
	count, err := s.PostDAO.CountPublishedByUser(ctx, userID, time.Now())
	if err != nil {
		log.L.Warn("count published posts failed", zap.Uint64("user_id", userID), zap.Error(err))
		return
	}
	if err := s.UserStatsDAO.SetPostCount(ctx, userID, count); err != nil {
		log.L.Warn("update post count failed", zap.Uint64("user_id", userID), zap.Error(err))
	}

	s.BadgeService.OnPublish(ctx, userID, count-1, count)
	s.ActivityService.Record(ctx, userID, models.ActivityPublish, postID, 0)
}

// GetDetail 帖子详情。可见性判断和信息流同一谓词；作者本人可以看到
// 自己的非公开内容。浏览数只对可见内容累加，同一用户一天只算一次。
func (s *PostService) GetDetail(ctx context.Context, postID uint64, viewerID uint64) (*types.PostDetail, error) {
	now := time.Now()
	post, err := s.PostDAO.GetVisible(ctx, postID, now)
	if err != nil {
		return nil, err
	}

	visible := post != nil
	if post == nil {
		// 作者或管理员查看自己的草稿/私密/未到期内容
		owned, err := s.PostDAO.FindById(ctx, postID)
		if err != nil {
			if dao.IsRecordNotFound(err) {
				return nil, response.NewError(404, "帖子不存在")
			}
			return nil, err
		}
		if viewerID == 0 || owned.UserID != viewerID {
			return nil, response.NewError(404, "帖子不存在")
		}
		post = owned
	}

	if visible {
		s.countView(ctx, postID, viewerID)
	}

	stats, err := s.StatsDAO.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	detail := &types.PostDetail{
		PostItem: *types.NewPostItem(post, stats, utils.ReadingTime(post.Content)),
		Content:  post.Content,
	}
	_ = json.Unmarshal(post.Tags, &detail.Tags)
	if stats != nil {
		detail.BookmarkCount = stats.BookmarkCount
		detail.CommentCount = stats.CommentCount
	}

	if viewerID > 0 {
		detail.IsLiked, _ = s.LikeDAO.IsLiked(ctx, postID, viewerID)
		detail.IsBookmarked, _ = s.BookmarkDAO.IsBookmarked(ctx, postID, viewerID)
	}

	return detail, nil
}

// countView 浏览数去重：同一用户对同一帖子一天内只计一次
func (s *PostService) countView(ctx context.Context, postID uint64, viewerID uint64) {
	if s.Redis != nil && viewerID > 0 {
		key := fmt.Sprintf("post:viewed:%d:%d:%s", postID, viewerID, time.Now().Format("20060102"))
		ok, err := s.Redis.SetNX(ctx, key, 1, 24*time.Hour).Result()
		if err == nil && !ok {
			return
		}
	}
	if err := s.StatsDAO.IncrViewCount(ctx, postID); err != nil {
		log.L.Warn("incr view count failed", zap.Uint64("post_id", postID), zap.Error(err))
	}
}

func (s *PostService) assemble(ctx context.Context, posts []*models.Post, total int64) (*types.ListPostsResponse, error) {
	resp := &types.ListPostsResponse{
		Posts: make([]*types.PostItem, 0, len(posts)),
		Total: total,
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

func (s *PostService) ListFeed(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResponse, error) {
	req.Normalize()
	posts, total, err := s.PostDAO.ListFeed(ctx, req.CategoryID, time.Now(), req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts, total)
}

func (s *PostService) ListPrivate(ctx context.Context, userID uint64, req *types.ListPostsRequest) (*types.ListPostsResponse, error) {
	req.Normalize()
	posts, total, err := s.PostDAO.ListPrivate(ctx, userID, time.Now(), req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts, total)
}

func (s *PostService) ListMine(ctx context.Context, userID uint64, req *types.ListPostsRequest) (*types.ListPostsResponse, error) {
	req.Normalize()
	posts, total, err := s.PostDAO.ListByUser(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts, total)
}

func (s *PostService) Search(ctx context.Context, req *types.SearchPostsRequest) (*types.ListPostsResponse, error) {
	req.Normalize()
	if req.Keyword == "" {
		return &types.ListPostsResponse{Posts: []*types.PostItem{}}, nil
	}
	posts, total, err := s.PostDAO.Search(ctx, req.Keyword, req.CategoryID, time.Now(), req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, posts, total)
}

func (s *PostService) ListSeries(ctx context.Context, seriesName string) ([]*types.PostItem, error) {
	if seriesName == "" {
		return []*types.PostItem{}, nil
	}
	posts, err := s.PostDAO.ListSeries(ctx, seriesName, time.Now())
	if err != nil {
		return nil, err
	}
	resp, err := s.assemble(ctx, posts, int64(len(posts)))
	if err != nil {
		return nil, err
	}
	return resp.Posts, nil
}
