package dao

import (
	"context"
	"time"

	"tradeverse/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserBadgeDAO struct {
	Repo[models.UserBadge]
}

func NewUserBadgeDAO(db *gorm.DB) *UserBadgeDAO {
	return &UserBadgeDAO{Repo: NewRepo[models.UserBadge](db)}
}

// Award 授予徽章，幂等：同一徽章重复授予直接忽略。
// 返回本次是否真正新增了记录。
func (d *UserBadgeDAO) Award(ctx context.Context, userID uint64, badge string) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.UserBadge{
			UserID:    userID,
			Badge:     badge,
			CreatedAt: time.Now(),
		})
	if res.Error != nil {
		// 唯一键冲突说明已授予过
		if IsDuplicateKey(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByUser 查询用户的徽章（授予时间顺序）
func (d *UserBadgeDAO) ListByUser(ctx context.Context, userID uint64) ([]*models.UserBadge, error) {
	var badges []*models.UserBadge
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&badges).Error
	return badges, err
}
