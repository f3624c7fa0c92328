package service

import (
	"context"
	"testing"

	"tradeverse/dao"
	"tradeverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRecommendService(db *gorm.DB) *RecommendService {
	return &RecommendService{
		PostDAO:  dao.NewPostDAO(db),
		LikeDAO:  dao.NewPostLikeDAO(db),
		StatsDAO: dao.NewPostStatsDAO(db),
	}
}

func setViewCount(t *testing.T, db *gorm.DB, postID uint64, views int64) {
	t.Helper()
	require.NoError(t, db.Model(&models.PostStats{}).
		Where("post_id = ?", postID).
		Update("view_count", views).Error)
}

func TestRecommendationsFromLikedCategories(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader")
	writer := seedUser(t, db, "writer")
	tech := seedCategory(t, db, "tech")
	cooking := seedCategory(t, db, "cooking")

	liked := seedPublishedPost(t, db, writer.ID, tech.ID, "liked one")
	hot := seedPublishedPost(t, db, writer.ID, tech.ID, "hot tech")
	cold := seedPublishedPost(t, db, writer.ID, tech.ID, "cold tech")
	offTopic := seedPublishedPost(t, db, writer.ID, cooking.ID, "pasta")
	setViewCount(t, db, hot.ID, 100)
	setViewCount(t, db, cold.ID, 5)
	setViewCount(t, db, offTopic.ID, 1000)

	svc := newRecommendService(db)
	ctx := context.Background()

	_, err := dao.NewPostLikeDAO(db).Toggle(ctx, liked.ID, reader.ID)
	require.NoError(t, err)

	items, err := svc.GetRecommendations(ctx, reader.ID)
	require.NoError(t, err)

	ids := make([]uint64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	// 点过赞的排除，同分类按热度排序
	assert.NotContains(t, ids, liked.ID)
	require.GreaterOrEqual(t, len(ids), 2)
	assert.Equal(t, hot.ID, ids[0])
	assert.Equal(t, cold.ID, ids[1])
}

func TestRecommendationsPaddedWithTopViewed(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader")
	writer := seedUser(t, db, "writer")
	cooking := seedCategory(t, db, "cooking")

	// 没有任何点赞历史，退回全站热门
	for _, title := range []string{"a", "b", "c"} {
		seedPublishedPost(t, db, writer.ID, cooking.ID, title)
	}

	svc := newRecommendService(db)
	items, err := svc.GetRecommendations(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestRecommendationsExcludeOwnPosts(t *testing.T) {
	db := newTestDB(t)
	reader := seedUser(t, db, "reader")
	writer := seedUser(t, db, "writer")
	tech := seedCategory(t, db, "tech")

	other := seedPublishedPost(t, db, writer.ID, tech.ID, "by writer")
	mine := seedPublishedPost(t, db, reader.ID, tech.ID, "by reader")

	svc := newRecommendService(db)
	ctx := context.Background()

	_, err := dao.NewPostLikeDAO(db).Toggle(ctx, other.ID, reader.ID)
	require.NoError(t, err)

	items, err := svc.GetRecommendations(ctx, reader.ID)
	require.NoError(t, err)
	for _, item := range items {
		assert.NotEqual(t, mine.ID, item.ID, "own posts never come back as recommendations")
	}
}
