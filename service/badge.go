package service

import (
	"context"

	"tradeverse/dao"
	"tradeverse/pkg/log"

	"go.uber.org/zap"
)

// 发帖数阈值对应的徽章和成就点
type badgeRule struct {
	Threshold int64
	Name      string
	Points    int64
}

var badgeRules = []badgeRule{
	{Threshold: 1, Name: "First Post", Points: 10},
	{Threshold: 5, Name: "Active Writer", Points: 25},
	{Threshold: 10, Name: "Prolific Author", Points: 50},
	{Threshold: 25, Name: "Content Master", Points: 100},
}

// EvaluatePublish 纯函数：发帖数从 prev 变为 next 时应得的成就点和徽章。
// 只奖励本次跨过的阈值，重复触发同一计数不会重复奖励。
func EvaluatePublish(prev, next int64) (points int64, badges []string) {
	badges = make([]string, 0)
	for _, rule := range badgeRules {
		if prev < rule.Threshold && next >= rule.Threshold {
			points += rule.Points
			badges = append(badges, rule.Name)
		}
	}
	return points, badges
}

var _ IBadgeService = (*BadgeService)(nil)

type IBadgeService interface {
	OnPublish(ctx context.Context, userID uint64, prevCount, newCount int64)
	ListBadges(ctx context.Context, userID uint64) ([]string, error)
}

type BadgeService struct {
	BadgeDAO *dao.UserBadgeDAO
	StatsDAO *dao.UserStatsDAO
}

// OnPublish 发布成功后的奖励入口。徽章表有唯一键兜底，重复触发同一计数时
// Award 不会新增记录，对应的成就点也不会重复累加；奖励失败只记日志，
// 不影响发布本身。
func (s *BadgeService) OnPublish(ctx context.Context, userID uint64, prevCount, newCount int64) {
	_, badges := EvaluatePublish(prevCount, newCount)
	if len(badges) == 0 {
		return
	}

	var points int64
	for _, rule := range badgeRules {
		if prevCount >= rule.Threshold || newCount < rule.Threshold {
			continue
		}
		awarded, err := s.BadgeDAO.Award(ctx, userID, rule.Name)
		if err != nil {
			log.L.Warn("award badge failed",
				zap.Uint64("user_id", userID),
				zap.String("badge", rule.Name),
				zap.Error(err))
			return
		}
		if awarded {
			points += rule.Points
		}
	}

	if points > 0 {
		if err := s.StatsDAO.IncrPoints(ctx, userID, points); err != nil {
			log.L.Warn("award points failed",
				zap.Uint64("user_id", userID),
				zap.Int64("points", points),
				zap.Error(err))
		}
	}
}

func (s *BadgeService) ListBadges(ctx context.Context, userID uint64) ([]string, error) {
	items, err := s.BadgeDAO.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	badges := make([]string, 0, len(items))
	for _, item := range items {
		badges = append(badges, item.Badge)
	}
	return badges, nil
}
