package service

import (
	"context"
	"strings"

	"tradeverse/config"
	"tradeverse/dao"
	"tradeverse/pkg/response"
	"tradeverse/pkg/utils"
	"tradeverse/types"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error
}

type UserService struct {
	Config       *config.Config
	UsersDAO     *dao.Users
	StatsDAO     *dao.UserStatsDAO
	BadgeService IBadgeService
	MailService  IMailService
}

func (s *UserService) GetProfile(ctx context.Context, userID uint64) (*types.UserProfile, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "用户不存在")
		}
		return nil, err
	}

	profile := &types.UserProfile{
		UserID:        user.ID,
		Username:      user.Username,
		Nickname:      user.Nickname,
		Bio:           user.Bio,
		EmailVerified: user.EmailVerified,
		Badges:        []string{},
	}

	stats, err := s.StatsDAO.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		profile.PostCount = stats.PostCount
		profile.AchievementPoints = stats.AchievementPoints
		profile.FollowerCount = stats.FollowerCount
		profile.FollowingCount = stats.FollowingCount
	}

	badges, err := s.BadgeService.ListBadges(ctx, userID)
	if err == nil {
		profile.Badges = badges
	}

	return profile, nil
}

// UpdateProfile 更新昵称/签名/邮箱，换邮箱需要重新查重
func (s *UserService) UpdateProfile(ctx context.Context, userID uint64, req *types.UpdateProfileRequest) error {
	updates := map[string]any{}

	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}
	updates["bio"] = req.Bio

	var verifyMail func()
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		if s.UsersDAO.IsEmailExist(ctx, email, userID) {
			return response.NewError(400, "邮箱已被占用")
		}
		user, err := s.UsersDAO.FindById(ctx, userID)
		if err != nil {
			return err
		}
		if email != user.Email {
			// 换邮箱后旧链接作废，重新走验证流程
			token := utils.GenVerifyToken(s.Config.App.TokenSalt, int64(userID))
			updates["email"] = email
			updates["email_verified"] = false
			updates["verify_token"] = token
			username := user.Username
			verifyMail = func() { s.MailService.SendVerifyMail(email, username, token) }
		}
	}

	if err := s.UsersDAO.Update(ctx, userID, updates); err != nil {
		return err
	}
	if verifyMail != nil {
		verifyMail()
	}
	return nil
}
