package service

import (
	"context"
	"strings"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/types"
)

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	Create(ctx context.Context, req *types.CategoryRequest) (uint64, error)
	Update(ctx context.Context, categoryID uint64, req *types.CategoryRequest) error
	List(ctx context.Context, isAdmin bool) ([]*models.Category, error)
}

type CategoryService struct {
	CategoryDAO *dao.CategoryDAO
}

// Create 新建分类，仅管理员入口调用，分类名全局唯一
func (s *CategoryService) Create(ctx context.Context, req *types.CategoryRequest) (uint64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, response.NewError(400, "分类名不能为空")
	}
	if s.CategoryDAO.IsNameExist(ctx, name, 0) {
		return 0, response.NewError(400, "分类名已存在")
	}

	category := &models.Category{
		ID:        uint64(snowflake.GenID()),
		Name:      name,
		IsPublic:  req.IsPublic,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		if dao.IsDuplicateKey(err) {
			return 0, response.NewError(400, "分类名已存在")
		}
		return 0, err
	}
	return category.ID, nil
}

// Update 管理员修改分类名或可见性
func (s *CategoryService) Update(ctx context.Context, categoryID uint64, req *types.CategoryRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.NewError(400, "分类名不能为空")
	}
	if _, err := s.CategoryDAO.FindById(ctx, categoryID); err != nil {
		if dao.IsRecordNotFound(err) {
			return response.NewError(404, "分类不存在")
		}
		return err
	}
	if s.CategoryDAO.IsNameExist(ctx, name, categoryID) {
		return response.NewError(400, "分类名已存在")
	}

	_, err := s.CategoryDAO.UpdateById(ctx, categoryID, map[string]any{
		"name":       name,
		"is_public":  req.IsPublic,
		"updated_at": time.Now(),
	})
	if err != nil && dao.IsDuplicateKey(err) {
		return response.NewError(400, "分类名已存在")
	}
	return err
}

func (s *CategoryService) List(ctx context.Context, isAdmin bool) ([]*models.Category, error) {
	if isAdmin {
		return s.CategoryDAO.ListAll(ctx)
	}
	return s.CategoryDAO.ListPublic(ctx)
}
