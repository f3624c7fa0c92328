package service

import (
	"context"
	"strings"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/types"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (uint64, error)
	List(ctx context.Context, req *types.GetCommentsRequest) (*types.CommentsListResponse, error)
	Delete(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error
}

type CommentService struct {
	PostDAO         *dao.PostDAO
	CommentDAO      *dao.CommentDAO
	UsersDAO        *dao.Users
	ActivityService IActivityService
}

// Create 发表评论，帖子必须公开可见
func (s *CommentService) Create(ctx context.Context, userID uint64, req *types.CreateCommentRequest) (uint64, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return 0, response.NewError(400, "评论内容不能为空")
	}

	post, err := s.PostDAO.GetVisible(ctx, req.PostID, time.Now())
	if err != nil {
		return 0, err
	}
	if post == nil {
		return 0, response.NewError(404, "帖子不存在")
	}

	comment := &models.Comment{
		ID:        uint64(snowflake.GenID()),
		PostID:    req.PostID,
		UserID:    userID,
		Content:   content,
		Status:    1,
		CreatedAt: time.Now(),
	}
	if err := s.CommentDAO.CreateWithCount(ctx, comment); err != nil {
		return 0, err
	}

	if post.UserID != userID {
		s.ActivityService.Record(ctx, userID, models.ActivityComment, req.PostID, post.UserID)
	}

	return comment.ID, nil
}

// List 游标分页拉取评论，多取一条用来判断还有没有下一页
func (s *CommentService) List(ctx context.Context, req *types.GetCommentsRequest) (*types.CommentsListResponse, error) {
	pageSize := req.PageSize
	if pageSize <= 0 || pageSize > types.MaxPageSize {
		pageSize = types.DefaultPageSize
	}

	comments, err := s.CommentDAO.ListByPostCursor(ctx, req.PostID, req.Cursor, pageSize+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(comments) > pageSize
	if hasMore {
		comments = comments[:pageSize]
	}

	resp := &types.CommentsListResponse{
		Comments: make([]*types.CommentResponse, 0, len(comments)),
		HasMore:  hasMore,
	}
	for _, comment := range comments {
		item := &types.CommentResponse{
			ID:        comment.ID,
			PostID:    comment.PostID,
			UserID:    comment.UserID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if user, err := s.UsersDAO.FindById(ctx, comment.UserID); err == nil {
			item.Username = user.Username
			item.Nickname = user.Nickname
		}
		resp.Comments = append(resp.Comments, item)
	}
	if hasMore && len(comments) > 0 {
		resp.NextCursor = comments[len(comments)-1].CreatedAt.UnixNano()
	}
	return resp, nil
}

// Delete 删除评论。评论作者、帖子作者、管理员三者可删
func (s *CommentService) Delete(ctx context.Context, userID uint64, isAdmin bool, commentID uint64) error {
	comment, err := s.CommentDAO.GetByID(ctx, commentID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return response.NewError(404, "评论不存在")
		}
		return err
	}

	allowed := comment.UserID == userID || isAdmin
	if !allowed {
		post, err := s.PostDAO.FindById(ctx, comment.PostID)
		if err == nil && post.UserID == userID {
			allowed = true
		}
	}
	if !allowed {
		return response.NewError(403, "没有权限删除该评论")
	}

	return s.CommentDAO.MarkDeletedWithCount(ctx, commentID, comment.PostID)
}
