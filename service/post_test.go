package service

import (
	"context"
	"testing"
	"time"

	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePublishedPost(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	postID, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:      "hello",
		Content:    "first post content",
		CategoryID: category.ID,
		Status:     models.PostStatusPublished,
		Tags:       []string{"go", "web"},
	})
	require.NoError(t, err)
	require.NotZero(t, postID)

	detail, err := svc.GetDetail(ctx, postID, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello", detail.Title)
	assert.Equal(t, []string{"go", "web"}, detail.Tags)

	// 发布结算：发帖数、徽章、动态
	stats, err := svc.UserStatsDAO.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PostCount)
	assert.Equal(t, int64(10), stats.AchievementPoints)

	var activityCount int64
	require.NoError(t, db.Model(&models.Activity{}).
		Where("user_id = ? AND action = ?", user.ID, models.ActivityPublish).
		Count(&activityCount).Error)
	assert.Equal(t, int64(1), activityCount)
}

func TestCreateDraftNotVisible(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	postID, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:      "draft",
		Content:    "not ready yet",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	feed, err := svc.ListFeed(ctx, &types.ListPostsRequest{})
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)

	// 其他人看不到草稿
	_, err = svc.GetDetail(ctx, postID, 0)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)

	// 作者自己能看到
	detail, err := svc.GetDetail(ctx, postID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "draft", detail.Title)

	// 草稿不触发结算
	stats, err := svc.UserStatsDAO.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.PostCount)
}

func TestScheduledPostTimeGate(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	viewer := seedUser(t, db, "viewer")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	// 过去的时间点直接拒绝
	past := time.Now().Add(-time.Hour)
	_, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:       "too late",
		Content:     "c",
		CategoryID:  category.ID,
		Status:      models.PostStatusScheduled,
		ScheduledAt: &past,
	})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	// 缺少时间点也拒绝
	_, err = svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:      "no time",
		Content:    "c",
		CategoryID: category.ID,
		Status:     models.PostStatusScheduled,
	})
	require.ErrorAs(t, err, &be)

	// 未到期的定时帖对他人不可见
	future := time.Now().Add(time.Hour)
	postID, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:       "scheduled",
		Content:     "c",
		CategoryID:  category.ID,
		Status:      models.PostStatusScheduled,
		ScheduledAt: &future,
	})
	require.NoError(t, err)

	feed, err := svc.ListFeed(ctx, &types.ListPostsRequest{})
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)

	_, err = svc.GetDetail(ctx, postID, viewer.ID)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)

	// 到期后自动可见，不需要任何写操作
	due := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", postID).
		Update("scheduled_at", due).Error)

	feed, err = svc.ListFeed(ctx, &types.ListPostsRequest{})
	require.NoError(t, err)
	require.Len(t, feed.Posts, 1)
	assert.Equal(t, postID, feed.Posts[0].ID)

	detail, err := svc.GetDetail(ctx, postID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, "scheduled", detail.Title)
}

func TestPrivatePostVisibility(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	postID, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:      "secret",
		Content:    "c",
		CategoryID: category.ID,
		Status:     models.PostStatusPublished,
		Visible:    models.PostVisiblePrivate,
	})
	require.NoError(t, err)

	feed, err := svc.ListFeed(ctx, &types.ListPostsRequest{})
	require.NoError(t, err)
	assert.Empty(t, feed.Posts)

	private, err := svc.ListPrivate(ctx, user.ID, &types.ListPostsRequest{})
	require.NoError(t, err)
	require.Len(t, private.Posts, 1)
	assert.Equal(t, postID, private.Posts[0].ID)
}

func TestUpdatePostOwnership(t *testing.T) {
	db := newTestDB(t)
	author := seedUser(t, db, "author")
	stranger := seedUser(t, db, "stranger")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	postID, err := svc.Create(ctx, author.ID, &types.CreatePostRequest{
		Title:      "mine",
		Content:    "c",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	err = svc.Update(ctx, stranger.ID, false, postID, &types.UpdatePostRequest{Title: "stolen"})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)

	// 管理员可以代为修改
	require.NoError(t, svc.Update(ctx, stranger.ID, true, postID, &types.UpdatePostRequest{Title: "moderated"}))
}

func TestPublishViaUpdateAwardsOnce(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	postID, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
		Title:      "wip",
		Content:    "c",
		CategoryID: category.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Update(ctx, user.ID, false, postID,
		&types.UpdatePostRequest{Status: models.PostStatusPublished}))
	// 已发布状态下再编辑不重复结算
	require.NoError(t, svc.Update(ctx, user.ID, false, postID,
		&types.UpdatePostRequest{Title: "edited"}))

	stats, err := svc.UserStatsDAO.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.PostCount)
	assert.Equal(t, int64(10), stats.AchievementPoints)
}

func TestSearchAndSeries(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	for i, title := range []string{"gorm tips", "gin tricks", "gorm deep dive"} {
		_, err := svc.Create(ctx, user.ID, &types.CreatePostRequest{
			Title:       title,
			Content:     "body",
			CategoryID:  category.ID,
			Status:      models.PostStatusPublished,
			SeriesName:  "go-web",
			SeriesOrder: i + 1,
		})
		require.NoError(t, err)
	}

	found, err := svc.Search(ctx, &types.SearchPostsRequest{Keyword: "gorm"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), found.Total)

	series, err := svc.ListSeries(ctx, "go-web")
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, "gorm tips", series[0].Title)
}

func TestViewCountIncrements(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "author")
	category := seedCategory(t, db, "tech")
	svc := newPostService(db)
	ctx := context.Background()

	post := seedPublishedPost(t, db, user.ID, category.ID, "viewed")

	_, err := svc.GetDetail(ctx, post.ID, 0)
	require.NoError(t, err)
	_, err = svc.GetDetail(ctx, post.ID, 0)
	require.NoError(t, err)

	stats, err := svc.StatsDAO.GetByPostID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ViewCount)
}
