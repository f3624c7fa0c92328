package types

import (
	"time"

	"tradeverse/models"
)

type CreatePostRequest struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Content     string     `json:"content" binding:"required"`
	Excerpt     string     `json:"excerpt" binding:"max=300"`
	CategoryID  uint64     `json:"category_id,string" binding:"required"`
	Status      int8       `json:"status"`  // 1草稿 2发布 3定时
	Visible     int8       `json:"visible"` // 1公开 2私密
	ScheduledAt *time.Time `json:"scheduled_at"`
	Tags        []string   `json:"tags"`
	SeriesName  string     `json:"series_name"`
	SeriesOrder int        `json:"series_order"`
}

type UpdatePostRequest struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Excerpt     string     `json:"excerpt"`
	CategoryID  uint64     `json:"category_id,string"`
	Status      int8       `json:"status"`
	Visible     int8       `json:"visible"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Tags        []string   `json:"tags"`
	SeriesName  string     `json:"series_name"`
	SeriesOrder int        `json:"series_order"`
}

type PostItem struct {
	ID          uint64     `json:"id,string"`
	UserID      uint64     `json:"user_id,string"`
	CategoryID  uint64     `json:"category_id,string"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt"`
	Status      int8       `json:"status"`
	Visible     int8       `json:"visible"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Tags        []string   `json:"tags"`
	SeriesName  string     `json:"series_name,omitempty"`
	SeriesOrder int        `json:"series_order,omitempty"`
	ViewCount   int64      `json:"view_count"`
	LikeCount   int64      `json:"like_count"`
	ReadingTime int        `json:"reading_time"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PostDetail struct {
	PostItem
	Content       string `json:"content"`
	BookmarkCount int64  `json:"bookmark_count"`
	CommentCount  int64  `json:"comment_count"`
	IsLiked       bool   `json:"is_liked"`
	IsBookmarked  bool   `json:"is_bookmarked"`
}

type ListPostsRequest struct {
	PageRequest
	CategoryID uint64 `form:"category_id"`
}

type SearchPostsRequest struct {
	PageRequest
	Keyword    string `form:"q" binding:"required"`
	CategoryID uint64 `form:"category_id"`
}

type ListPostsResponse struct {
	Posts []*PostItem `json:"posts"`
	Total int64       `json:"total"`
}

// ToggleResponse AJAX 开关类接口的统一响应
type ToggleResponse struct {
	Action string `json:"action"` // liked/unliked bookmarked/unbookmarked followed/unfollowed
	Count  int64  `json:"count"`
	State  bool   `json:"state"`
}

// NewPostItem 模型转列表项
func NewPostItem(post *models.Post, stats *models.PostStats, readingTime int) *PostItem {
	item := &PostItem{
		ID:          post.ID,
		UserID:      post.UserID,
		CategoryID:  post.CategoryID,
		Title:       post.Title,
		Excerpt:     post.Excerpt,
		Status:      post.Status,
		Visible:     post.Visible,
		ScheduledAt: post.ScheduledAt,
		SeriesName:  post.SeriesName,
		SeriesOrder: post.SeriesOrder,
		ReadingTime: readingTime,
		CreatedAt:   post.CreatedAt,
		Tags:        []string{},
	}
	if stats != nil {
		item.ViewCount = stats.ViewCount
		item.LikeCount = stats.LikeCount
	}
	return item
}
