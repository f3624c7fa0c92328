package models

import (
	"time"

	"gorm.io/datatypes"
)

// PostTemplate 帖子模板，公开模板所有用户可用
type PostTemplate struct {
	ID              uint64         `gorm:"column:id;primary_key" json:"id"`
	Name            string         `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description     string         `gorm:"column:description;type:text" json:"description"`
	TitleTemplate   string         `gorm:"column:title_template;type:varchar(200);not null;default:''" json:"title_template"`
	ContentTemplate string         `gorm:"column:content_template;type:text" json:"content_template"`
	TagsTemplate    datatypes.JSON `gorm:"column:tags_template" json:"tags_template"`
	CategoryID      *uint64        `gorm:"column:category_id" json:"category_id,omitempty"`
	CreatedBy       uint64         `gorm:"column:created_by;not null;index:idx_created_by" json:"created_by"`
	IsPublic        bool           `gorm:"column:is_public;not null;default:0" json:"is_public"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (PostTemplate) TableName() string {
	return "post_templates"
}
