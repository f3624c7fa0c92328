package dao

import (
	"context"
	"fmt"

	"tradeverse/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByIdentifier 用户名或邮箱查询
func (u *Users) FindByIdentifier(ctx context.Context, identifier string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ? OR email = ?", identifier, identifier)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// IsEmailExist 判断邮箱是否被占用，excludeID 排除自己
func (u *Users) IsEmailExist(ctx context.Context, email string, excludeID uint64) bool {
	exist, _ := u.Repo.IsExist(ctx, "email = ? AND id <> ?", email, excludeID)
	return exist
}

func (u *Users) Update(ctx context.Context, userID uint64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	err := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", userID).
		Updates(updates).Error

	if err != nil {
		return fmt.Errorf("dao.Users.Update error: %w", err)
	}

	return nil
}
