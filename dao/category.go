package dao

import (
	"context"

	"tradeverse/models"

	"gorm.io/gorm"
)

type CategoryDAO struct {
	Repo[models.Category]
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{Repo: NewRepo[models.Category](db)}
}

// ListPublic 公开分类，按名称排序
func (d *CategoryDAO) ListPublic(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := d.Db.WithContext(ctx).
		Where("is_public = ?", true).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

// ListAll 全部分类（管理员视角）
func (d *CategoryDAO) ListAll(ctx context.Context) ([]*models.Category, error) {
	var items []*models.Category
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&items).Error
	return items, err
}

// IsNameExist 分类名是否已存在，excludeID 用于改名时排除自身
func (d *CategoryDAO) IsNameExist(ctx context.Context, name string, excludeID uint64) bool {
	exist, _ := d.IsExist(ctx, "name = ? AND id <> ?", name, excludeID)
	return exist
}
