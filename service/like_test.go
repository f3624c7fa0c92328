package service

import (
	"context"
	"testing"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLikeService(db *gorm.DB) *LikeService {
	statsDAO := dao.NewUserStatsDAO(db)
	return &LikeService{
		PostDAO:  dao.NewPostDAO(db),
		LikeDAO:  dao.NewPostLikeDAO(db),
		StatsDAO: dao.NewPostStatsDAO(db),
		ActivityService: &ActivityService{
			ActivityDAO: dao.NewActivityDAO(db),
			FollowDAO:   dao.NewUserFollowDAO(db, statsDAO),
		},
	}
}

func TestLikeToggle(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "likeable")
	svc := newLikeService(db)
	ctx := context.Background()

	resp, err := svc.Toggle(ctx, post.ID, reader.ID)
	require.NoError(t, err)
	assert.True(t, resp.State)
	assert.Equal(t, "liked", resp.Action)
	assert.Equal(t, int64(1), resp.Count)

	// 取消点赞后不留任何记录
	resp, err = svc.Toggle(ctx, post.ID, reader.ID)
	require.NoError(t, err)
	assert.False(t, resp.State)
	assert.Equal(t, "unliked", resp.Action)
	assert.Equal(t, int64(0), resp.Count)

	var rows int64
	require.NoError(t, db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", post.ID, reader.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestLikeRowUniqueness(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, author.ID, category.ID, "liked twice")

	require.NoError(t, db.Create(&models.PostLike{
		PostID: post.ID,
		UserID: reader.ID,
	}).Error)

	// 唯一索引兜底：绕过业务层的重复插入也必须失败
	err := db.Create(&models.PostLike{
		PostID: post.ID,
		UserID: reader.ID,
	}).Error
	require.Error(t, err)
	assert.True(t, dao.IsDuplicateKey(err))

	var rows int64
	require.NoError(t, db.Model(&models.PostLike{}).
		Where("post_id = ? AND user_id = ?", post.ID, reader.ID).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestLikeInvisiblePost(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	category := seedCategory(t, db, "tech")
	svc := newLikeService(db)
	ctx := context.Background()

	post := seedPublishedPost(t, db, author.ID, category.ID, "hidden")
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Update("visible", models.PostVisiblePrivate).Error)

	_, err := svc.Toggle(ctx, post.ID, reader.ID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}
