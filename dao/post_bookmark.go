package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type PostBookmarkDAO struct {
	Repo[models.PostBookmark]
}

func NewPostBookmarkDAO(db *gorm.DB) *PostBookmarkDAO {
	return &PostBookmarkDAO{Repo: NewRepo[models.PostBookmark](db)}
}

// IsBookmarked 指定用户是否收藏过指定帖子
func (d *PostBookmarkDAO) IsBookmarked(ctx context.Context, postID uint64, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// Toggle 收藏开关，语义同点赞：记录和计数在同一事务内变更
func (d *PostBookmarkDAO) Toggle(ctx context.Context, postID uint64, userID uint64) (bookmarked bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostBookmark{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			bookmarked = false
			return incrPostStat(tx, postID, "bookmark_count", -1)
		}

		item := models.PostBookmark{PostID: postID, UserID: userID, CreatedAt: time.Now()}
		if err := tx.Create(&item).Error; err != nil {
			if IsDuplicateKey(err) {
				bookmarked = true
				return nil
			}
			return err
		}
		bookmarked = true
		return incrPostStat(tx, postID, "bookmark_count", 1)
	})
	return bookmarked, err
}

// ListPostIDsByUser 用户收藏的帖子ID（收藏时间倒序）
func (d *PostBookmarkDAO) ListPostIDsByUser(ctx context.Context, userID uint64, limit, offset int) ([]uint64, int64, error) {
	var total int64
	if err := d.Db.WithContext(ctx).Model(&models.PostBookmark{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.PostBookmark{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("post_id", &ids).Error
	return ids, total, err
}
