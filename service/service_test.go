package service

import (
	"fmt"
	"testing"
	"time"

	"tradeverse/config"
	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/snowflake"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		App: &config.App{Env: "test", Debug: true, TokenSalt: "test-salt"},
		Jwt: &config.Jwt{Secret: "test-secret", AccessExpire: 3600, RefreshExpire: 86400},
	}
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.Users {
	t.Helper()
	user := &models.Users{
		ID:        uint64(snowflake.GenID()),
		Username:  username,
		Email:     username + "@example.com",
		Password:  "x",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Create(&models.UserStats{
		UserID:    user.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{
		ID:        uint64(snowflake.GenID()),
		Name:      name,
		IsPublic:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func newPostService(db *gorm.DB) *PostService {
	statsDAO := dao.NewUserStatsDAO(db)
	return &PostService{
		DB:           db,
		PostDAO:      dao.NewPostDAO(db),
		StatsDAO:     dao.NewPostStatsDAO(db),
		LikeDAO:      dao.NewPostLikeDAO(db),
		BookmarkDAO:  dao.NewPostBookmarkDAO(db),
		CategoryDAO:  dao.NewCategoryDAO(db),
		UserStatsDAO: statsDAO,
		BadgeService: &BadgeService{
			BadgeDAO: dao.NewUserBadgeDAO(db),
			StatsDAO: statsDAO,
		},
		ActivityService: &ActivityService{
			ActivityDAO: dao.NewActivityDAO(db),
			FollowDAO:   dao.NewUserFollowDAO(db, statsDAO),
		},
	}
}

func seedPublishedPost(t *testing.T, db *gorm.DB, userID, categoryID uint64, title string) *models.Post {
	t.Helper()
	post := &models.Post{
		ID:         uint64(snowflake.GenID()),
		UserID:     userID,
		CategoryID: categoryID,
		Title:      title,
		Content:    fmt.Sprintf("content of %s", title),
		Status:     models.PostStatusPublished,
		Visible:    models.PostVisiblePublic,
		Tags:       []byte(`[]`),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	require.NoError(t, db.Create(post).Error)
	require.NoError(t, db.Create(&models.PostStats{
		PostID:    post.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error)
	return post
}
