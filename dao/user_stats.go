package dao

import (
	"context"
	"errors"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type UserStatsDAO struct {
	Repo[models.UserStats]
}

func NewUserStatsDAO(db *gorm.DB) *UserStatsDAO {
	return &UserStatsDAO{Repo: NewRepo[models.UserStats](db)}
}

// GetByUserID 查询用户统计，不存在返回 nil
func (d *UserStatsDAO) GetByUserID(ctx context.Context, userID uint64) (*models.UserStats, error) {
	var stats models.UserStats
	err := d.Db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreateAccount 初始化用户统计行
func (d *UserStatsDAO) CreateAccount(ctx context.Context, userID uint64) error {
	now := time.Now()
	return d.Db.WithContext(ctx).Create(&models.UserStats{
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error
}

// incr 单列增减，统计行不存在时先创建
func (d *UserStatsDAO) incr(tx *gorm.DB, userID uint64, column string, delta int64) error {
	res := tx.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
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

	stats := models.UserStats{UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	switch column {
	case "post_count":
		stats.PostCount = delta
	case "achievement_points":
		stats.AchievementPoints = delta
	case "follower_count":
		stats.FollowerCount = delta
	case "following_count":
		stats.FollowingCount = delta
	}
	return tx.Create(&stats).Error
}

// SetPostCount 发布后用重新统计的值覆盖，避免计数漂移
func (d *UserStatsDAO) SetPostCount(ctx context.Context, userID uint64, count int64) error {
	res := d.Db.WithContext(ctx).Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"post_count": count,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Create(&models.UserStats{
		UserID:    userID,
		PostCount: count,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error
}

func (d *UserStatsDAO) IncrPoints(ctx context.Context, userID uint64, delta int64) error {
	return d.incr(d.Db.WithContext(ctx), userID, "achievement_points", delta)
}

func (d *UserStatsDAO) IncrFollowerCount(tx *gorm.DB, userID uint64, delta int64) error {
	return d.incr(tx, userID, "follower_count", delta)
}

func (d *UserStatsDAO) IncrFollowingCount(tx *gorm.DB, userID uint64, delta int64) error {
	return d.incr(tx, userID, "following_count", delta)
}
