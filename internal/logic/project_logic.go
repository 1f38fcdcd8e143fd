package logic

import (
	"errors"
	"fmt"

	"github.com/blues/fms/internal/model"
	"gorm.io/gorm"
)

// ProjectLogic 项目业务逻辑
type ProjectLogic struct {
	db *gorm.DB
}

// NewProjectLogic 创建项目业务逻辑
func NewProjectLogic(db *gorm.DB) *ProjectLogic {
	return &ProjectLogic{db: db}
}

// ProjectPatch 项目部分更新字段，nil表示调用方未提供该字段
// current_revenue 不在此列，只能由投资事务更新
type ProjectPatch struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	TargetRevenue *float64 `json:"target_revenue"`
	ImageURL      *string  `json:"image_url"`
	IsActive      *bool    `json:"is_active"`
}

// CreateProject 为创作者创建项目
func (p *ProjectLogic) CreateProject(creatorID uint, project *model.Project) error {
	// 校验创作者存在且角色正确（角色不符与不存在同样处理）
	var creator model.User
	if err := p.db.First(&creator, creatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("创作者不存在: %w", ErrNotFound)
		}
		return err
	}
	if creator.Role != model.RoleCreator {
		return fmt.Errorf("创作者不存在: %w", ErrNotFound)
	}

	project.CreatorID = creatorID
	project.CurrentRevenue = 0
	project.IsActive = true

	return p.db.Create(project).Error
}

// ListProjects 分页获取启用中的项目，可按分类过滤
func (p *ProjectLogic) ListProjects(skip, limit int, category string) ([]model.Project, error) {
	query := p.db.Where("is_active = ?", true)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var projects []model.Project
	if err := query.Offset(skip).Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject 按ID获取项目，已下架的项目同样返回
func (p *ProjectLogic) GetProject(id uint) (*model.Project, error) {
	var project model.Project
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("项目不存在: %w", ErrNotFound)
		}
		return nil, err
	}
	return &project, nil
}

// UpdateProject 按调用方提供的字段部分更新项目，未提供的字段保持不变
func (p *ProjectLogic) UpdateProject(id uint, patch *ProjectPatch) (*model.Project, error) {
	var project model.Project
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("项目不存在: %w", ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.TargetRevenue != nil {
		updates["target_revenue"] = *patch.TargetRevenue
	}
	if patch.ImageURL != nil {
		updates["image_url"] = *patch.ImageURL
	}
	if patch.IsActive != nil {
		updates["is_active"] = *patch.IsActive
	}

	if len(updates) > 0 {
		if err := p.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &project, nil
}

// DeactivateProject 下架项目（软删除，记录保留可按ID查询）
func (p *ProjectLogic) DeactivateProject(id uint) error {
	var project model.Project
	if err := p.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("项目不存在: %w", ErrNotFound)
		}
		return err
	}

	return p.db.Model(&project).Update("is_active", false).Error
}
