package logic

import (
	"errors"
	"fmt"

	"github.com/blues/fms/internal/model"
	"gorm.io/gorm"
)

// InvestmentLogic 投资记录业务逻辑
type InvestmentLogic struct {
	db *gorm.DB
}

// NewInvestmentLogic 创建投资记录业务逻辑
func NewInvestmentLogic(db *gorm.DB) *InvestmentLogic {
	return &InvestmentLogic{db: db}
}

// CreateInvestment 创建投资记录并更新三处汇总字段
// 四次写入在同一事务内提交：插入投资记录、项目 current_revenue、
// 投资人 total_invested、创作者 total_revenue。任何一步失败整体回滚。
func (i *InvestmentLogic) CreateInvestment(investorID uint, investment *model.Investment) error {
	// 校验投资人存在且角色正确（角色不符与不存在同样处理）
	var investor model.User
	if err := i.db.First(&investor, investorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("投资人不存在: %w", ErrNotFound)
		}
		return err
	}
	if investor.Role != model.RoleInvestor {
		return fmt.Errorf("投资人不存在: %w", ErrNotFound)
	}

	// 校验项目存在
	var project model.Project
	if err := i.db.First(&project, investment.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("项目不存在: %w", ErrNotFound)
		}
		return err
	}

	investment.InvestorID = investorID

	// 开始事务
	tx := i.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// 创建投资记录
	if err := tx.Create(investment).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 更新项目当前收入
	if err := tx.Model(&project).Update("current_revenue", gorm.Expr("current_revenue + ?", investment.Amount)).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 更新投资人累计投资额
	if err := tx.Model(&investor).Update("total_invested", gorm.Expr("total_invested + ?", investment.Amount)).Error; err != nil {
		tx.Rollback()
		return err
	}

	// 更新创作者累计收入；创作者记录缺失属于数据异常，跳过不报错
	var creator model.User
	err := tx.First(&creator, project.CreatorID).Error
	if err == nil {
		if err := tx.Model(&creator).Update("total_revenue", gorm.Expr("total_revenue + ?", investment.Amount)).Error; err != nil {
			tx.Rollback()
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return err
	}

	// 提交事务
	if err := tx.Commit().Error; err != nil {
		return err
	}

	return nil
}

// ListInvestments 分页获取全部投资记录
func (i *InvestmentLogic) ListInvestments(skip, limit int) ([]model.Investment, error) {
	var investments []model.Investment
	if err := i.db.Offset(skip).Limit(limit).Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}

// ListProjectInvestments 获取单个项目的全部投资记录
func (i *InvestmentLogic) ListProjectInvestments(projectID uint) ([]model.Investment, error) {
	var investments []model.Investment
	if err := i.db.Where("project_id = ?", projectID).Find(&investments).Error; err != nil {
		return nil, err
	}
	return investments, nil
}
