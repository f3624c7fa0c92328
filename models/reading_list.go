package models

import "time"

// ReadingList 阅读清单
type ReadingList struct {
	ID          uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID      uint64    `gorm:"column:user_id;not null;index:idx_user" json:"user_id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsPublic    bool      `gorm:"column:is_public;not null;default:0" json:"is_public"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ReadingList) TableName() string {
	return "reading_lists"
}

// ReadingListPost 清单与帖子的关联
// 唯一键: list_id + post_id
type ReadingListPost struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	ListID    uint64    `gorm:"column:list_id;not null;uniqueIndex:uk_list_post,priority:1" json:"list_id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_list_post,priority:2" json:"post_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ReadingListPost) TableName() string { return "reading_list_posts" }
