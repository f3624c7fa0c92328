package dao

import (
	"context"

	"tradeverse/models"

	"gorm.io/gorm"
)

type ActivityDAO struct {
	Repo[models.Activity]
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{Repo: NewRepo[models.Activity](db)}
}

// ListFeed 动态流：自己 + 关注的人，按时间倒序截断
func (d *ActivityDAO) ListFeed(ctx context.Context, userIDs []uint64, limit int) ([]*models.Activity, error) {
	if len(userIDs) == 0 {
		return []*models.Activity{}, nil
	}
	var items []*models.Activity
	err := d.Db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
