package dao

import (
	"context"

	"tradeverse/models"

	"gorm.io/gorm"
)

type PostTemplateDAO struct {
	Repo[models.PostTemplate]
}

func NewPostTemplateDAO(db *gorm.DB) *PostTemplateDAO {
	return &PostTemplateDAO{Repo: NewRepo[models.PostTemplate](db)}
}

// ListVisible 可用模板：公开的 + 自己创建的
func (d *PostTemplateDAO) ListVisible(ctx context.Context, userID uint64) ([]*models.PostTemplate, error) {
	var items []*models.PostTemplate
	err := d.Db.WithContext(ctx).
		Where("is_public = ? OR created_by = ?", true, userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
