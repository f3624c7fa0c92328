package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type PostLikeDAO struct {
	Repo[models.PostLike]
}

func NewPostLikeDAO(db *gorm.DB) *PostLikeDAO {
	return &PostLikeDAO{Repo: NewRepo[models.PostLike](db)}
}

// IsLiked 指定用户是否点赞过指定帖子
func (d *PostLikeDAO) IsLiked(ctx context.Context, postID uint64, userID uint64) (bool, error) {
	return d.IsExist(ctx, "post_id = ? AND user_id = ?", postID, userID)
}

// Toggle 点赞开关：有记录则删除并减计数，无记录则创建并加计数。
// 记录和计数在同一事务内变更；并发重复插入撞唯一键时视作已点赞。
func (d *PostLikeDAO) Toggle(ctx context.Context, postID uint64, userID uint64) (liked bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			liked = false
			return incrPostStat(tx, postID, "like_count", -1)
		}

		item := models.PostLike{PostID: postID, UserID: userID, CreatedAt: time.Now()}
		if err := tx.Create(&item).Error; err != nil {
			if IsDuplicateKey(err) {
				liked = true
				return nil
			}
			return err
		}
		liked = true
		return incrPostStat(tx, postID, "like_count", 1)
	})
	return liked, err
}

// ListLikedPostIDs 用户点赞过的帖子ID（时间倒序）
func (d *PostLikeDAO) ListLikedPostIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.PostLike{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("post_id", &ids).Error
	return ids, err
}

// ListLikedCategoryIDs 用户点赞过的帖子所属分类（去重）
func (d *PostLikeDAO) ListLikedCategoryIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).
		Table("post_likes").
		Select("DISTINCT posts.category_id").
		Joins("JOIN posts ON posts.id = post_likes.post_id").
		Where("post_likes.user_id = ?", userID).
		Pluck("posts.category_id", &ids).Error
	return ids, err
}
