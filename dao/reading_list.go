package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type ReadingListDAO struct {
	Repo[models.ReadingList]
}

func NewReadingListDAO(db *gorm.DB) *ReadingListDAO {
	return &ReadingListDAO{Repo: NewRepo[models.ReadingList](db)}
}

// ListVisible 对指定用户可见的清单：公开的 + 自己的
func (d *ReadingListDAO) ListVisible(ctx context.Context, userID uint64) ([]*models.ReadingList, error) {
	var lists []*models.ReadingList
	err := d.Db.WithContext(ctx).
		Where("is_public = ? OR user_id = ?", true, userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

// ListByOwner 用户自己的清单
func (d *ReadingListDAO) ListByOwner(ctx context.Context, userID uint64) ([]*models.ReadingList, error) {
	var lists []*models.ReadingList
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

type ReadingListPostDAO struct {
	Repo[models.ReadingListPost]
}

func NewReadingListPostDAO(db *gorm.DB) *ReadingListPostDAO {
	return &ReadingListPostDAO{Repo: NewRepo[models.ReadingListPost](db)}
}

// Add 把帖子加入清单，重复添加返回 false
func (d *ReadingListPostDAO) Add(ctx context.Context, listID, postID uint64) (bool, error) {
	item := models.ReadingListPost{ListID: listID, PostID: postID, CreatedAt: time.Now()}
	err := d.Db.WithContext(ctx).Create(&item).Error
	if err != nil {
		if IsDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove 把帖子移出清单
func (d *ReadingListPostDAO) Remove(ctx context.Context, listID, postID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("list_id = ? AND post_id = ?", listID, postID).
		Delete(&models.ReadingListPost{})
	return res.RowsAffected, res.Error
}

// ListPostIDs 清单内的帖子ID（加入时间倒序）
func (d *ReadingListPostDAO) ListPostIDs(ctx context.Context, listID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.ReadingListPost{}).
		Where("list_id = ?", listID).
		Order("created_at DESC").
		Pluck("post_id", &ids).Error
	return ids, err
}

// RemoveByList 删除清单时清理关联
func (d *ReadingListPostDAO) RemoveByList(ctx context.Context, listID uint64) error {
	return d.Db.WithContext(ctx).
		Where("list_id = ?", listID).
		Delete(&models.ReadingListPost{}).Error
}
