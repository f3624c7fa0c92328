package dao

import (
	"context"
	"errors"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type PostDAO struct {
	Repo[models.Post]
}

func NewPostDAO(db *gorm.DB) *PostDAO {
	return &PostDAO{Repo: NewRepo[models.Post](db)}
}

// VisibleScope 公开可见谓词，feed、详情、搜索、推荐共用同一个判断：
// 公开 且 (已发布 或 定时发布时间已到)
func VisibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("posts.visible = ?", models.PostVisiblePublic).
			Where("(posts.status = ? OR (posts.status = ? AND posts.scheduled_at <= ?))",
				models.PostStatusPublished, models.PostStatusScheduled, now)
	}
}

// ListFeed 公开信息流，categoryID 为 0 表示不过滤分类
func (d *PostDAO) ListFeed(ctx context.Context, categoryID uint64, now time.Time, limit, offset int) ([]*models.Post, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Post{}).Scopes(VisibleScope(now))
	if categoryID > 0 {
		query = query.Where("posts.category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := query.
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// ListPrivate 私密信息流，只有作者本人可见，定时门槛同样生效
func (d *PostDAO) ListPrivate(ctx context.Context, userID uint64, now time.Time, limit, offset int) ([]*models.Post, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("visible = ? AND user_id = ?", models.PostVisiblePrivate, userID).
		Where("(status = ? OR (status = ? AND scheduled_at <= ?))",
			models.PostStatusPublished, models.PostStatusScheduled, now)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// ListByUser 作者自己的全部帖子（含草稿）
func (d *PostDAO) ListByUser(ctx context.Context, userID uint64, limit, offset int) ([]*models.Post, int64, error) {
	query := d.Db.WithContext(ctx).Model(&models.Post{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// Search 标题/正文模糊搜索，走公开可见谓词
func (d *PostDAO) Search(ctx context.Context, keyword string, categoryID uint64, now time.Time, limit, offset int) ([]*models.Post, int64, error) {
	like := "%" + keyword + "%"
	query := d.Db.WithContext(ctx).Model(&models.Post{}).
		Scopes(VisibleScope(now)).
		Where("(posts.title LIKE ? OR posts.content LIKE ?)", like, like)
	if categoryID > 0 {
		query = query.Where("posts.category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []*models.Post
	err := query.
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, total, err
}

// GetVisible 详情查询，同样使用可见谓词，避免暴露未到期内容
func (d *PostDAO) GetVisible(ctx context.Context, postID uint64, now time.Time) (*models.Post, error) {
	var post models.Post
	err := d.Db.WithContext(ctx).
		Scopes(VisibleScope(now)).
		Where("posts.id = ?", postID).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindVisibleByIDs 批量查询中只保留公开可见的帖子，保持入参顺序
func (d *PostDAO) FindVisibleByIDs(ctx context.Context, ids []uint64, now time.Time) ([]*models.Post, error) {
	if len(ids) == 0 {
		return []*models.Post{}, nil
	}
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Scopes(VisibleScope(now)).
		Where("posts.id IN ?", ids).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*models.Post, len(posts))
	for _, post := range posts {
		byID[post.ID] = post
	}
	ordered := make([]*models.Post, 0, len(posts))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			ordered = append(ordered, post)
		}
	}
	return ordered, nil
}

// ListSeries 同一系列的帖子，按系列内顺序
func (d *PostDAO) ListSeries(ctx context.Context, seriesName string, now time.Time) ([]*models.Post, error) {
	var posts []*models.Post
	err := d.Db.WithContext(ctx).
		Scopes(VisibleScope(now)).
		Where("posts.series_name = ?", seriesName).
		Order("posts.series_order ASC, posts.created_at ASC").
		Find(&posts).Error
	return posts, err
}

// CountPublishedByUser 作者已发布的帖子数（定时到期视同已发布）
func (d *PostDAO) CountPublishedByUser(ctx context.Context, userID uint64, now time.Time) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Post{}).
		Where("user_id = ?", userID).
		Where("(status = ? OR (status = ? AND scheduled_at <= ?))",
			models.PostStatusPublished, models.PostStatusScheduled, now).
		Count(&count).Error
	return count, err
}

// ListRecommendCandidates 推荐候选：公开可见、指定分类、排除作者本人和已点赞的帖子，
// 按浏览量倒序、时间倒序
func (d *PostDAO) ListRecommendCandidates(ctx context.Context, categoryIDs []uint64, userID uint64, excludeIDs []uint64, now time.Time, limit int) ([]*models.Post, error) {
	if len(categoryIDs) == 0 {
		return []*models.Post{}, nil
	}
	query := d.Db.WithContext(ctx).Model(&models.Post{}).
		Scopes(VisibleScope(now)).
		Joins("LEFT JOIN post_stats ON post_stats.post_id = posts.id").
		Where("posts.category_id IN ?", categoryIDs).
		Where("posts.user_id <> ?", userID)
	if len(excludeIDs) > 0 {
		query = query.Where("posts.id NOT IN ?", excludeIDs)
	}

	var posts []*models.Post
	err := query.
		Select("posts.*").
		Order("COALESCE(post_stats.view_count, 0) DESC, posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}

// ListTopViewed 全站最热帖子，用于推荐补足
func (d *PostDAO) ListTopViewed(ctx context.Context, userID uint64, excludeIDs []uint64, now time.Time, limit int) ([]*models.Post, error) {
	query := d.Db.WithContext(ctx).Model(&models.Post{}).
		Scopes(VisibleScope(now)).
		Joins("LEFT JOIN post_stats ON post_stats.post_id = posts.id").
		Where("posts.user_id <> ?", userID)
	if len(excludeIDs) > 0 {
		query = query.Where("posts.id NOT IN ?", excludeIDs)
	}

	var posts []*models.Post
	err := query.
		Select("posts.*").
		Order("COALESCE(post_stats.view_count, 0) DESC, posts.created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, err
}
