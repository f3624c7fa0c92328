package types

import "time"

// 创建评论请求
type CreateCommentRequest struct {
	PostID  uint64 `json:"post_id,string" binding:"required"`
	Content string `json:"content" binding:"required,min=1,max=1000"`
}

type GetCommentsRequest struct {
	PostID   uint64 `form:"post_id" binding:"required"`
	Cursor   int64  `form:"cursor"`    // 游标(时间戳纳秒)
	PageSize int    `form:"page_size"` // 每页数量
}

type CommentResponse struct {
	ID        uint64    `json:"id,string"`
	PostID    uint64    `json:"post_id,string"`
	UserID    uint64    `json:"user_id,string"`
	Username  string    `json:"username"`
	Nickname  string    `json:"nickname"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentsListResponse struct {
	Comments   []*CommentResponse `json:"comments"`
	NextCursor int64              `json:"next_cursor"` // 下一页游标
	HasMore    bool               `json:"has_more"`    // 是否还有更多
}
