package models

import "time"

const (
	ActivityPublish  = "publish"
	ActivityLike     = "like"
	ActivityComment  = "comment"
	ActivityFollow   = "follow"
	ActivityBookmark = "bookmark"
)

// Activity 动态记录，只增不改
type Activity struct {
	ID        uint64    `gorm:"column:id;primary_key" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;index:idx_user_created,priority:1" json:"user_id"`
	Action    string    `gorm:"column:action;type:varchar(20);not null" json:"action"`
	PostID    uint64    `gorm:"column:post_id;not null;default:0" json:"post_id"`
	TargetID  uint64    `gorm:"column:target_id;not null;default:0" json:"target_id"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_user_created,priority:2" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
