package models

import (
	"time"
)

type Users struct {
	ID            uint64    `gorm:"column:id;primary_key" json:"id"`
	Username      string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex:uk_username" json:"username"`
	Email         string    `gorm:"column:email;type:varchar(120);not null;uniqueIndex:uk_email" json:"email"`
	Nickname      string    `gorm:"column:nickname;type:varchar(120);not null;default:''" json:"nickname"`
	Password      string    `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Bio           string    `gorm:"column:bio;type:text" json:"bio"`
	IsAdmin       bool      `gorm:"column:is_admin;not null;default:0" json:"is_admin"`
	EmailVerified bool      `gorm:"column:email_verified;not null;default:0" json:"email_verified"`
	VerifyToken   string    `gorm:"column:verify_token;type:varchar(100);not null;default:''" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// UserStats 用户统计
// 对应表 user_stats
type UserStats struct {
	UserID            uint64    `gorm:"column:user_id;primaryKey" json:"user_id"`
	PostCount         int64     `gorm:"column:post_count;default:0" json:"post_count"`
	AchievementPoints int64     `gorm:"column:achievement_points;default:0" json:"achievement_points"`
	FollowerCount     int64     `gorm:"column:follower_count;default:0" json:"follower_count"`
	FollowingCount    int64     `gorm:"column:following_count;default:0" json:"following_count"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

// UserBadge 用户徽章
// 唯一键: user_id + badge，同一徽章不会重复授予
type UserBadge struct {
	ID        uint64    `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_badge,priority:1" json:"user_id"`
	Badge     string    `gorm:"column:badge;type:varchar(50);not null;uniqueIndex:uk_user_badge,priority:2" json:"badge"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (UserBadge) TableName() string { return "user_badges" }
