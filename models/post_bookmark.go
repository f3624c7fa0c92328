package models

import "time"

// PostBookmark 收藏记录
// 对应表 post_bookmarks
// 唯一键: post_id + user_id，取消收藏会删除记录
type PostBookmark struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	PostID    uint64    `gorm:"column:post_id;not null;uniqueIndex:uk_post_user_bm,priority:1" json:"post_id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_post_user_bm,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostBookmark) TableName() string { return "post_bookmarks" }
