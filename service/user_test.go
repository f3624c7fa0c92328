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

func newUserService(db *gorm.DB) *UserService {
	statsDAO := dao.NewUserStatsDAO(db)
	return &UserService{
		Config:   testConfig(),
		UsersDAO: dao.NewUsers(db),
		StatsDAO: statsDAO,
		BadgeService: &BadgeService{
			BadgeDAO: dao.NewUserBadgeDAO(db),
			StatsDAO: statsDAO,
		},
		MailService: &MailService{Config: testConfig()},
	}
}

func TestUpdateProfileEmailChange(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice")
	require.NoError(t, db.Model(&models.Users{}).Where("id = ?", alice.ID).
		Updates(map[string]any{"email_verified": true, "verify_token": "old-token"}).Error)

	bob := seedUser(t, db, "bob")

	// 占用邮箱拒绝
	err := svc.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{Email: bob.Email})
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	// 换邮箱后验证状态归零，旧 token 作废
	require.NoError(t, svc.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{
		Nickname: "Alice",
		Email:    "alice-new@example.com",
	}))

	var reloaded models.Users
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.Equal(t, "alice-new@example.com", reloaded.Email)
	assert.Equal(t, "Alice", reloaded.Nickname)
	assert.False(t, reloaded.EmailVerified)
	assert.NotEmpty(t, reloaded.VerifyToken)
	assert.NotEqual(t, "old-token", reloaded.VerifyToken)

	// 提交自己当前的邮箱不触发重新验证
	require.NoError(t, db.Model(&models.Users{}).Where("id = ?", alice.ID).
		Update("email_verified", true).Error)
	require.NoError(t, svc.UpdateProfile(ctx, alice.ID, &types.UpdateProfileRequest{
		Email: "alice-new@example.com",
	}))
	require.NoError(t, db.First(&reloaded, "id = ?", alice.ID).Error)
	assert.True(t, reloaded.EmailVerified)
}

func TestGetProfileAggregates(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)
	ctx := context.Background()

	user := seedUser(t, db, "carol")
	require.NoError(t, db.Model(&models.UserStats{}).Where("user_id = ?", user.ID).
		Updates(map[string]any{"post_count": 3, "achievement_points": 10}).Error)
	require.NoError(t, db.Create(&models.UserBadge{
		UserID: user.ID,
		Badge:  "First Post",
	}).Error)

	profile, err := svc.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, profile.Username)
	assert.Equal(t, int64(3), profile.PostCount)
	assert.Equal(t, int64(10), profile.AchievementPoints)
	assert.Contains(t, profile.Badges, "First Post")

	_, err = svc.GetProfile(ctx, 123456789)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)
}
