package service

import (
	"context"
	"testing"

	"tradeverse/dao"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluatePublish(t *testing.T) {
	tests := []struct {
		name       string
		prev, next int64
		points     int64
		badges     []string
	}{
		{"first post", 0, 1, 10, []string{"First Post"}},
		{"no threshold crossed", 1, 2, 0, []string{}},
		{"fifth post", 4, 5, 25, []string{"Active Writer"}},
		{"batch import crosses several", 0, 10, 85, []string{"First Post", "Active Writer", "Prolific Author"}},
		{"already past threshold", 10, 11, 0, []string{}},
		{"content master", 24, 25, 100, []string{"Content Master"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, badges := EvaluatePublish(tt.prev, tt.next)
			assert.Equal(t, tt.points, points)
			assert.Equal(t, tt.badges, badges)
		})
	}
}

func TestBadgeOnPublishIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "writer")

	statsDAO := dao.NewUserStatsDAO(db)
	svc := &BadgeService{
		BadgeDAO: dao.NewUserBadgeDAO(db),
		StatsDAO: statsDAO,
	}
	ctx := context.Background()

	svc.OnPublish(ctx, user.ID, 0, 1)
	// 同一计数重复触发，徽章和成就点都不应该翻倍
	svc.OnPublish(ctx, user.ID, 0, 1)

	badges, err := svc.ListBadges(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"First Post"}, badges)

	stats, err := statsDAO.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(10), stats.AchievementPoints)
}

func TestBadgeListEmpty(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "lurker")

	svc := &BadgeService{
		BadgeDAO: dao.NewUserBadgeDAO(db),
		StatsDAO: dao.NewUserStatsDAO(db),
	}

	badges, err := svc.ListBadges(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, badges)
}
