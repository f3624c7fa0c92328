package dao

import (
	"context"
	"errors"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type PostStatsDAO struct {
	Repo[models.PostStats]
}

func NewPostStatsDAO(db *gorm.DB) *PostStatsDAO {
	return &PostStatsDAO{Repo: NewRepo[models.PostStats](db)}
}

// GetByPostID 查询帖子统计，不存在返回 nil
func (d *PostStatsDAO) GetByPostID(ctx context.Context, postID uint64) (*models.PostStats, error) {
	var stats models.PostStats
	err := d.Db.WithContext(ctx).Where("post_id = ?", postID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// incr 单列增减，统计行不存在时先创建
func incrPostStat(tx *gorm.DB, postID uint64, column string, delta int64) error {
	res := tx.Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Updates(map[string]any{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	stats := models.PostStats{PostID: postID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	switch column {
	case "view_count":
		stats.ViewCount = delta
	case "like_count":
		stats.LikeCount = delta
	case "bookmark_count":
		stats.BookmarkCount = delta
	case "comment_count":
		stats.CommentCount = delta
	}
	return tx.Create(&stats).Error
}

// IncrViewCount 浏览数只增不减
func (d *PostStatsDAO) IncrViewCount(ctx context.Context, postID uint64) error {
	return incrPostStat(d.Db.WithContext(ctx), postID, "view_count", 1)
}
