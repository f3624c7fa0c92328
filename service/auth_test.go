package service

import (
	"context"
	"testing"
	"time"

	"tradeverse/dao"
	"tradeverse/pkg/jwt"
	"tradeverse/pkg/response"
	"tradeverse/pkg/utils"
	"tradeverse/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := testConfig()
	return &AuthService{
		Config:      cfg,
		DB:          db,
		UsersDAO:    dao.NewUsers(db),
		StatsDAO:    dao.NewUserStatsDAO(db),
		MailService: &MailService{Config: cfg},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "Alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)

	// 注册同时建好统计账户
	stats, err := svc.StatsDAO.GetByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)

	// 用户名和邮箱都能登录，大小写不敏感
	resp, err := svc.Login(ctx, "ALICE", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	resp, err = svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.UserID)
}

func TestRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	login, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	// 有效期还很长的 refresh token 不轮换
	pair, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, login.RefreshToken, pair.RefreshToken)

	secret := []byte(svc.Config.Jwt.Secret)
	claims, err := jwt.ParseToken(secret, jwt.TypeAccess, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, login.UserID, claims.UserID)

	// 临近过期的 refresh token 换发新的
	nearExpiry, err := jwt.GenerateToken(secret, login.UserID, false, jwt.TypeRefresh, time.Hour)
	require.NoError(t, err)
	pair, err = svc.Refresh(ctx, nearExpiry)
	require.NoError(t, err)
	assert.NotEqual(t, nearExpiry, pair.RefreshToken)
	_, err = jwt.ParseToken(secret, jwt.TypeRefresh, pair.RefreshToken)
	require.NoError(t, err)

	// access token 不能当 refresh token 用
	_, err = svc.Refresh(ctx, pair.AccessToken)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 401, be.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bob", "wrong")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.Login(ctx, "nobody", "secret123")
	require.ErrorAs(t, err, &be)
}

func TestRegisterDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	var be *response.BizError

	_, err = svc.Register(ctx, &types.RegisterRequest{
		Username: "carol",
		Email:    "other@example.com",
		Password: "secret123",
	})
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)

	_, err = svc.Register(ctx, &types.RegisterRequest{
		Username: "carol2",
		Email:    "carol@example.com",
		Password: "secret123",
	})
	require.ErrorAs(t, err, &be)
}

func TestVerifyEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.RegisterRequest{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.VerifyToken)

	require.NoError(t, svc.VerifyEmail(ctx, user.VerifyToken))

	verified, err := svc.UsersDAO.FindById(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, verified.EmailVerified)
	assert.Empty(t, verified.VerifyToken)

	// 重复点同一个链接不报错
	require.NoError(t, svc.VerifyEmail(ctx, user.VerifyToken))
}

func TestVerifyEmailBadToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	err := svc.VerifyEmail(context.Background(), "not-a-token")
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 400, be.Code)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	token := utils.GenVerifyToken("salt", 42)
	userID, issuedAt, err := utils.DecodeVerifyToken("salt", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.WithinDuration(t, time.Now(), issuedAt, 5*time.Second)

	_, _, err = utils.DecodeVerifyToken("other-salt", token)
	assert.Error(t, err)
}
