package service

import (
	"context"
	"strings"
	"time"

	"tradeverse/config"
	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/encrypt"
	"tradeverse/pkg/jwt"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/pkg/utils"
	"tradeverse/types"

	"gorm.io/gorm"
)

// 验证 token 有效期
const verifyTokenTTL = 48 * time.Hour

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, identifier string, password string) (*types.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	VerifyEmail(ctx context.Context, token string) error
}

type AuthService struct {
	Config      *config.Config
	DB          *gorm.DB
	UsersDAO    *dao.Users
	StatsDAO    *dao.UserStatsDAO
	MailService IMailService
}

// Register 注册用户：用户和统计行在同一事务内创建，
// 验证邮件发送失败不影响注册结果
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if username == "" || email == "" || req.Password == "" {
		return nil, response.NewError(400, "请填写完整的注册信息")
	}
	if s.UsersDAO.IsUsernameExist(ctx, username) {
		return nil, response.NewError(400, "用户名已存在")
	}
	if s.UsersDAO.IsEmailExist(ctx, email, 0) {
		return nil, response.NewError(400, "邮箱已被占用")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	userID := uint64(snowflake.GenID())
	token := utils.GenVerifyToken(s.Config.App.TokenSalt, int64(userID))

	user := &models.Users{
		ID:          userID,
		Username:    username,
		Email:       email,
		Nickname:    req.Nickname,
		Password:    hash,
		VerifyToken: token,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserStats{
			UserID:    userID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}).Error
	})
	if err != nil {
		if dao.IsDuplicateKey(err) {
			return nil, response.NewError(400, "用户名或邮箱已存在")
		}
		return nil, err
	}

	// 可选副作用，失败只记日志
	s.MailService.SendVerifyMail(email, username, token)

	return user, nil
}

// Login 登录处理，identifier 可以是用户名或邮箱
func (s *AuthService) Login(ctx context.Context, identifier string, password string) (*types.LoginResponse, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	user, err := s.UsersDAO.FindByIdentifier(ctx, identifier)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(400, "账号或密码错误")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.NewError(400, "账号或密码错误")
	}

	secret := []byte(s.Config.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, jwt.TypeAccess,
		time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}
	refresh, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, jwt.TypeRefresh,
		time.Duration(s.Config.Jwt.RefreshExpire)*time.Second)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		IsAdmin:  user.IsAdmin,
		TokenPair: types.TokenPair{
			AccessToken:  access,
			RefreshToken: refresh,
		},
	}, nil
}

// Refresh 用 refresh token 换新的 access token。
// refresh token 剩余有效期不足四分之一时一并轮换
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	secret := []byte(s.Config.Jwt.Secret)
	claims, err := jwt.ParseToken(secret, jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.NewError(401, "登录已过期，请重新登录")
	}

	user, err := s.UsersDAO.FindById(ctx, claims.UserID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(401, "登录已过期，请重新登录")
		}
		return nil, err
	}

	access, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, jwt.TypeAccess,
		time.Duration(s.Config.Jwt.AccessExpire)*time.Second)
	if err != nil {
		return nil, err
	}

	pair := &types.TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
	}

	refreshExpire := time.Duration(s.Config.Jwt.RefreshExpire) * time.Second
	if jwt.ShouldRotateRefreshToken(claims, refreshExpire/4) {
		rotated, err := jwt.GenerateToken(secret, user.ID, user.IsAdmin, jwt.TypeRefresh, refreshExpire)
		if err != nil {
			return nil, err
		}
		pair.RefreshToken = rotated
	}
	return pair, nil
}

// VerifyEmail 邮箱验证：token 解出用户ID后和库里的 token 比对
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	userID, issuedAt, err := utils.DecodeVerifyToken(s.Config.App.TokenSalt, token)
	if err != nil {
		return response.NewError(400, "验证链接无效")
	}
	if time.Since(issuedAt) > verifyTokenTTL {
		return response.NewError(400, "验证链接已过期")
	}

	user, err := s.UsersDAO.FindById(ctx, uint64(userID))
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return response.NewError(400, "验证链接无效")
		}
		return err
	}
	if user.EmailVerified {
		return nil
	}
	if user.VerifyToken != token {
		return response.NewError(400, "验证链接无效")
	}

	return s.UsersDAO.Update(ctx, user.ID, map[string]any{
		"email_verified": true,
		"verify_token":   "",
	})
}
