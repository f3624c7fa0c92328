package service

import (
	"context"
	"testing"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	statsDAO := dao.NewUserStatsDAO(db)
	return &CommentService{
		PostDAO:    dao.NewPostDAO(db),
		CommentDAO: dao.NewCommentDAO(db),
		UsersDAO:   dao.NewUsers(db),
		ActivityService: &ActivityService{
			ActivityDAO: dao.NewActivityDAO(db),
			FollowDAO:   dao.NewUserFollowDAO(db, statsDAO),
		},
	}
}

func TestCommentCreateAndDelete(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "discussable")
	svc := newCommentService(db)
	statsDAO := dao.NewPostStatsDAO(db)
	ctx := context.Background()

	commentID, err := svc.Create(ctx, reader.ID, &types.CreateCommentRequest{
		PostID:  post.ID,
		Content: "nice write-up",
	})
	require.NoError(t, err)

	stats, err := statsDAO.GetByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.CommentCount)

	// 路人删不掉别人的评论
	stranger := seedUser(t, db, "stranger")
	err = svc.Delete(ctx, stranger.ID, false, commentID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	// 帖子作者可以删
	require.NoError(t, svc.Delete(ctx, author.ID, false, commentID))

	stats, err = statsDAO.GetByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.CommentCount)

	// 已删评论不再出现在列表里
	list, err := svc.List(ctx, &types.GetCommentsRequest{PostID: post.ID})
	require.NoError(t, err)
	assert.Empty(t, list.Comments)
}

func TestCommentWriteAtomicity(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "fragile")
	svc := newCommentService(db)
	ctx := context.Background()

	commentID, err := svc.Create(ctx, author.ID, &types.CreateCommentRequest{
		PostID:  post.ID,
		Content: "kept",
	})
	require.NoError(t, err)

	// 计数表写不进去时整个事务要回滚，不能留下孤儿评论
	require.NoError(t, db.Migrator().DropTable(&models.PostStats{}))

	_, err = svc.Create(ctx, author.ID, &types.CreateCommentRequest{
		PostID:  post.ID,
		Content: "orphan",
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).
		Where("post_id = ? AND status = 1", post.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 删除同理：计数回减失败则评论保持可见
	require.Error(t, svc.Delete(ctx, author.ID, false, commentID))
	comment, err := dao.NewCommentDAO(db).GetByID(ctx, commentID)
	require.NoError(t, err)
	assert.Equal(t, int8(1), comment.Status)
}

func TestCommentBlankContent(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "p")
	svc := newCommentService(db)

	_, err := svc.Create(context.Background(), author.ID, &types.CreateCommentRequest{
		PostID:  post.ID,
		Content: "   ",
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestCommentCursorPaging(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "busy thread")
	svc := newCommentService(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, author.ID, &types.CreateCommentRequest{
			PostID:  post.ID,
			Content: "comment",
		})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, &types.GetCommentsRequest{PostID: post.ID, PageSize: 3})
	require.NoError(t, err)
	require.Len(t, first.Comments, 3)
	require.True(t, first.HasMore)
	require.NotZero(t, first.NextCursor)

	second, err := svc.List(ctx, &types.GetCommentsRequest{
		PostID:   post.ID,
		PageSize: 3,
		Cursor:   first.NextCursor,
	})
	require.NoError(t, err)
	assert.Len(t, second.Comments, 2)
	assert.False(t, second.HasMore)
}
