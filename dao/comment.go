package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type CommentDAO struct {
	Repo[models.Comment]
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{
		Repo: NewRepo[models.Comment](db),
	}
}

// GetByID 根据ID获取评论（已删除的不返回）
func (d *CommentDAO) GetByID(ctx context.Context, commentID uint64) (*models.Comment, error) {
	var comment models.Comment
	err := d.Db.WithContext(ctx).
		Where("id = ? AND status = 1", commentID).
		First(&comment).Error
	return &comment, err
}

// ListByPostCursor 使用游标获取帖子评论（按时间倒序）
func (d *CommentDAO) ListByPostCursor(ctx context.Context, postID uint64, cursor int64, limit int) ([]*models.Comment, error) {
	var comments []*models.Comment
	query := d.Db.WithContext(ctx).
		Where("post_id = ? AND status = 1", postID)

	// 如果有游标,则查询游标之前的数据
	if cursor > 0 {
		cursorTime := time.Unix(0, cursor)
		query = query.Where("created_at < ?", cursorTime)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error

	return comments, err
}

// CreateWithCount 评论行和 comment_count 在同一事务内落库
func (d *CommentDAO) CreateWithCount(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return incrPostStat(tx, comment.PostID, "comment_count", 1)
	})
}

// MarkDeletedWithCount 逻辑删除并在同一事务内回减计数
func (d *CommentDAO) MarkDeletedWithCount(ctx context.Context, commentID uint64, postID uint64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).
			Where("id = ?", commentID).
			Update("status", 0).Error; err != nil {
			return err
		}
		return incrPostStat(tx, postID, "comment_count", -1)
	})
}

// CountByPost 帖子下的有效评论数
func (d *CommentDAO) CountByPost(ctx context.Context, postID uint64) (int64, error) {
	return d.FindCount(ctx, "post_id = ? AND status = 1", postID)
}
