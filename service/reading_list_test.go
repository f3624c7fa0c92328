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

func newReadingListService(db *gorm.DB) *ReadingListService {
	return &ReadingListService{
		DB:          db,
		ListDAO:     dao.NewReadingListDAO(db),
		ListPostDAO: dao.NewReadingListPostDAO(db),
		PostDAO:     dao.NewPostDAO(db),
		StatsDAO:    dao.NewPostStatsDAO(db),
	}
}

func TestReadingListLifecycle(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	writer := seedUser(t, db, "writer")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, writer.ID, category.ID, "worth keeping")
	svc := newReadingListService(db)
	ctx := context.Background()

	listID, err := svc.Create(ctx, owner.ID, &types.CreateReadingListRequest{
		Name:     "to read",
		IsPublic: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.AddPost(ctx, owner.ID, listID, post.ID))
	// 重复收录不报错
	require.NoError(t, svc.AddPost(ctx, owner.ID, listID, post.ID))

	items, err := svc.ListPosts(ctx, 0, listID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, post.ID, items[0].ID)

	require.NoError(t, svc.RemovePost(ctx, owner.ID, listID, post.ID))
	items, err = svc.ListPosts(ctx, 0, listID)
	require.NoError(t, err)
	assert.Empty(t, items)

	// 删除清单连同关联一起清理
	require.NoError(t, svc.AddPost(ctx, owner.ID, listID, post.ID))
	require.NoError(t, svc.Delete(ctx, owner.ID, listID))

	var rows int64
	require.NoError(t, db.Model(&models.ReadingListPost{}).
		Where("list_id = ?", listID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestReadingListOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")
	svc := newReadingListService(db)
	ctx := context.Background()

	listID, err := svc.Create(ctx, owner.ID, &types.CreateReadingListRequest{Name: "mine"})
	require.NoError(t, err)

	err = svc.Delete(ctx, other.ID, listID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 403, be.Code)
}

func TestPrivateReadingListHidden(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	other := seedUser(t, db, "other")
	svc := newReadingListService(db)
	ctx := context.Background()

	listID, err := svc.Create(ctx, owner.ID, &types.CreateReadingListRequest{
		Name:     "secret stash",
		IsPublic: false,
	})
	require.NoError(t, err)

	// 主人能看
	_, err = svc.ListPosts(ctx, owner.ID, listID)
	require.NoError(t, err)

	// 别人看不到，私密清单表现得像不存在
	_, err = svc.ListPosts(ctx, other.ID, listID)
	var be *response.BizError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, 404, be.Code)

	lists, err := svc.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestReadingListHidesUnpublishedPosts(t *testing.T) {
	db := newTestDB(t)
	owner := seedUser(t, db, "owner")
	writer := seedUser(t, db, "writer")
	category := seedCategory(t, db, "tech")
	post := seedPublishedPost(t, db, writer.ID, category.ID, "soon gone")
	svc := newReadingListService(db)
	ctx := context.Background()

	listID, err := svc.Create(ctx, owner.ID, &types.CreateReadingListRequest{Name: "l", IsPublic: true})
	require.NoError(t, err)
	require.NoError(t, svc.AddPost(ctx, owner.ID, listID, post.ID))

	// 收录后作者把帖子转成了私密
	require.NoError(t, db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Update("visible", models.PostVisiblePrivate).Error)

	items, err := svc.ListPosts(ctx, 0, listID)
	require.NoError(t, err)
	assert.Empty(t, items)
}
