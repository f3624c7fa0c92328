package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
)

type UserFollowDAO struct {
	Repo[models.UserFollow]
	statsDAO *UserStatsDAO
}

func NewUserFollowDAO(db *gorm.DB, statsDAO *UserStatsDAO) *UserFollowDAO {
	return &UserFollowDAO{
		Repo:     NewRepo[models.UserFollow](db),
		statsDAO: statsDAO,
	}
}

// IsFollowing 检查是否已关注
func (d *UserFollowDAO) IsFollowing(ctx context.Context, followerID, followedID uint64) (bool, error) {
	return d.IsExist(ctx, "follower_id = ? AND followed_id = ?", followerID, followedID)
}

// Toggle 关注开关：关系行和双方统计在同一事务内变更
func (d *UserFollowDAO) Toggle(ctx context.Context, followerID, followedID uint64) (following bool, err error) {
	err = d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
			Delete(&models.UserFollow{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			following = false
			if err := d.statsDAO.IncrFollowerCount(tx, followedID, -1); err != nil {
				return err
			}
			return d.statsDAO.IncrFollowingCount(tx, followerID, -1)
		}

		item := models.UserFollow{
			FollowerID: followerID,
			FollowedID: followedID,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&item).Error; err != nil {
			if IsDuplicateKey(err) {
				following = true
				return nil
			}
			return err
		}
		following = true
		if err := d.statsDAO.IncrFollowerCount(tx, followedID, 1); err != nil {
			return err
		}
		return d.statsDAO.IncrFollowingCount(tx, followerID, 1)
	})
	return following, err
}

// ListFollowedIDs 用户关注的所有用户ID
func (d *UserFollowDAO) ListFollowedIDs(ctx context.Context, followerID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.UserFollow{}).
		Where("follower_id = ?", followerID).
		Pluck("followed_id", &ids).Error
	return ids, err
}

// GetFollowerCount 粉丝数
func (d *UserFollowDAO) GetFollowerCount(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "followed_id = ?", userID)
}

// GetFollowingCount 关注数
func (d *UserFollowDAO) GetFollowingCount(ctx context.Context, userID uint64) (int64, error) {
	return d.FindCount(ctx, "follower_id = ?", userID)
}

// GetFollowingList 关注列表（按关注时间倒序），联表取用户信息
func (d *UserFollowDAO) GetFollowingList(ctx context.Context, userID uint64, limit, offset int) ([]*models.FollowingUser, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).Model(&models.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var follows []*models.FollowingUser
	err = d.Db.WithContext(ctx).
		Table("user_follows uf").
		Select("u.id as user_id, u.username, u.nickname, uf.created_at as follow_time").
		Joins("LEFT JOIN users u ON uf.followed_id = u.id").
		Where("uf.follower_id = ?", userID).
		Order("uf.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&follows).Error

	return follows, total, err
}
