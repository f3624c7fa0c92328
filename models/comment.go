package models

import (
	"time"
)

// Comment 评论表结构
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey" json:"id"`                              // 评论唯一ID
	PostID    uint64    `gorm:"column:post_id;not null;index:idx_post_id" json:"post_id"`    // 所属帖子ID
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`    // 发布评论的用户ID
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`            // 评论正文
	Status    int8      `gorm:"column:status;default:1" json:"status"`                       // 状态: 1-正常, 0-已删除
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`    // 创建时间
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`          // 更新时间
}

func (Comment) TableName() string {
	return "comments"
}
