//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewUserStatsDAO,
	NewUserBadgeDAO,
	NewCategoryDAO,
	NewPostDAO,
	NewPostStatsDAO,
	NewCommentDAO,
	NewPostLikeDAO,
	NewPostBookmarkDAO,
	NewUserFollowDAO,
	NewReadingListDAO,
	NewReadingListPostDAO,
	NewPostTemplateDAO,
	NewActivityDAO,
)
