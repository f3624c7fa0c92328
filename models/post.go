package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	PostStatusDraft     int8 = 1
	PostStatusPublished int8 = 2
	PostStatusScheduled int8 = 3
)

const (
	PostVisiblePublic  int8 = 1
	PostVisiblePrivate int8 = 2
)

type Post struct {
	ID          uint64         `gorm:"column:id;primary_key" json:"id"`
	UserID      uint64         `gorm:"column:user_id;not null;index:idx_userid_status" json:"user_id"`
	CategoryID  uint64         `gorm:"column:category_id;not null;index:idx_category" json:"category_id"`
	Title       string         `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content     string         `gorm:"column:content;type:text;not null" json:"content"`
	Excerpt     string         `gorm:"column:excerpt;type:varchar(300);not null;default:''" json:"excerpt"`
	Status      int8           `gorm:"column:status;not null;default:1;index:idx_userid_status" json:"status"`
	Visible     int8           `gorm:"column:visible;not null;default:1" json:"visible"`
	ScheduledAt *time.Time     `gorm:"column:scheduled_at" json:"scheduled_at,omitempty"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	SeriesName  string         `gorm:"column:series_name;type:varchar(100);not null;default:''" json:"series_name"`
	SeriesOrder int            `gorm:"column:series_order;not null;default:0" json:"series_order"`
	CreatedAt   time.Time      `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}

// PostStats 帖子统计
// 对应表 post_stats，view_count 只增不减
type PostStats struct {
	PostID        uint64    `gorm:"column:post_id;primaryKey" json:"post_id"`
	ViewCount     int64     `gorm:"column:view_count;default:0" json:"view_count"`
	LikeCount     int64     `gorm:"column:like_count;default:0" json:"like_count"`
	BookmarkCount int64     `gorm:"column:bookmark_count;default:0" json:"bookmark_count"`
	CommentCount  int64     `gorm:"column:comment_count;default:0" json:"comment_count"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (PostStats) TableName() string {
	return "post_stats"
}
