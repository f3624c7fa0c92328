package service

import (
	"context"
	"encoding/json"
	"time"

	"tradeverse/dao"
	"tradeverse/models"
	"tradeverse/pkg/response"
	"tradeverse/pkg/snowflake"
	"tradeverse/types"
)

var _ ITemplateService = (*TemplateService)(nil)

type ITemplateService interface {
	Create(ctx context.Context, userID uint64, req *types.CreateTemplateRequest) (uint64, error)
	Update(ctx context.Context, userID uint64, isAdmin bool, templateID uint64, req *types.UpdateTemplateRequest) error
	Delete(ctx context.Context, userID uint64, isAdmin bool, templateID uint64) error
	List(ctx context.Context, userID uint64) ([]*models.PostTemplate, error)
	Instantiate(ctx context.Context, userID uint64, templateID uint64) (*types.TemplateDraft, error)
}

type TemplateService struct {
	TemplateDAO *dao.PostTemplateDAO
	CategoryDAO *dao.CategoryDAO
}

func (s *TemplateService) Create(ctx context.Context, userID uint64, req *types.CreateTemplateRequest) (uint64, error) {
	if req.CategoryID != nil {
		if _, err := s.CategoryDAO.FindById(ctx, *req.CategoryID); err != nil {
			if dao.IsRecordNotFound(err) {
				return 0, response.NewError(400, "分类不存在")
			}
			return 0, err
		}
	}

	tags, _ := json.Marshal(req.TagsTemplate)
	template := &models.PostTemplate{
		ID:              uint64(snowflake.GenID()),
		Name:            req.Name,
		Description:     req.Description,
		TitleTemplate:   req.TitleTemplate,
		ContentTemplate: req.ContentTemplate,
		TagsTemplate:    tags,
		CategoryID:      req.CategoryID,
		CreatedBy:       userID,
		IsPublic:        req.IsPublic,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if err := s.TemplateDAO.Create(ctx, template); err != nil {
		return 0, err
	}
	return template.ID, nil
}

// owned 加载模板并校验操作权限（创建者或管理员）
func (s *TemplateService) owned(ctx context.Context, userID uint64, isAdmin bool, templateID uint64) (*models.PostTemplate, error) {
	template, err := s.TemplateDAO.FindById(ctx, templateID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "模板不存在")
		}
		return nil, err
	}
	if template.CreatedBy != userID && !isAdmin {
		return nil, response.NewError(403, "没有权限操作他人的模板")
	}
	return template, nil
}

func (s *TemplateService) Update(ctx context.Context, userID uint64, isAdmin bool, templateID uint64, req *types.UpdateTemplateRequest) error {
	if _, err := s.owned(ctx, userID, isAdmin, templateID); err != nil {
		return err
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.TitleTemplate != "" {
		updates["title_template"] = req.TitleTemplate
	}
	if req.ContentTemplate != "" {
		updates["content_template"] = req.ContentTemplate
	}
	if req.TagsTemplate != nil {
		tags, _ := json.Marshal(req.TagsTemplate)
		updates["tags_template"] = tags
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	_, err := s.TemplateDAO.UpdateById(ctx, templateID, updates)
	return err
}

func (s *TemplateService) Delete(ctx context.Context, userID uint64, isAdmin bool, templateID uint64) error {
	if _, err := s.owned(ctx, userID, isAdmin, templateID); err != nil {
		return err
	}
	_, err := s.TemplateDAO.DeleteById(ctx, templateID)
	return err
}

// List 可用模板：公开的 + 自己创建的
func (s *TemplateService) List(ctx context.Context, userID uint64) ([]*models.PostTemplate, error) {
	return s.TemplateDAO.ListVisible(ctx, userID)
}

// Instantiate 把模板展开成一份草稿，私有模板只有创建者可用
func (s *TemplateService) Instantiate(ctx context.Context, userID uint64, templateID uint64) (*types.TemplateDraft, error) {
	template, err := s.TemplateDAO.FindById(ctx, templateID)
	if err != nil {
		if dao.IsRecordNotFound(err) {
			return nil, response.NewError(404, "模板不存在")
		}
		return nil, err
	}
	if !template.IsPublic && template.CreatedBy != userID {
		return nil, response.NewError(404, "模板不存在")
	}

	draft := &types.TemplateDraft{
		Title:      template.TitleTemplate,
		Content:    template.ContentTemplate,
		Tags:       []string{},
		CategoryID: template.CategoryID,
	}
	_ = json.Unmarshal(template.TagsTemplate, &draft.Tags)
	return draft, nil
}
