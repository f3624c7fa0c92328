package models

import (
	"time"
)

// UserFollow 关注关系
// 唯一键: follower_id + followed_id，取消关注会删除记录
type UserFollow struct {
	ID         uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	FollowerID uint64    `gorm:"column:follower_id;not null;uniqueIndex:uk_follow,priority:1" json:"follower_id"` // 关注人
	FollowedID uint64    `gorm:"column:followed_id;not null;uniqueIndex:uk_follow,priority:2" json:"followed_id"` // 被关注人
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

type FollowingUser struct {
	UserID     uint64    `gorm:"column:user_id" json:"user_id"`
	Username   string    `gorm:"column:username" json:"username"`
	Nickname   string    `gorm:"column:nickname" json:"nickname"`
	FollowTime time.Time `gorm:"column:follow_time" json:"follow_time"`
	IsMutual   bool      `gorm:"-" json:"is_mutual"` // 是否互相关注
}
