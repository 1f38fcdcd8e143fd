package logic

import (
	"errors"
	"fmt"

	"github.com/blues/fms/internal/model"
	"gorm.io/gorm"
)

// DashboardLogic 仪表盘聚合查询，读侧按需重算，不做缓存
type DashboardLogic struct {
	db *gorm.DB
}

// NewDashboardLogic 创建仪表盘业务逻辑
func NewDashboardLogic(db *gorm.DB) *DashboardLogic {
	return &DashboardLogic{db: db}
}

// CreatorDashboard 创作者仪表盘数据
type CreatorDashboard struct {
	User              *model.User        `json:"user"`
	Projects          []model.Project    `json:"projects"`
	TotalRevenue      float64            `json:"total_revenue"`
	TotalInvestors    int                `json:"total_investors"`
	RecentInvestments []model.Investment `json:"recent_investments"`
}

// InvestorDashboard 投资人仪表盘数据
type InvestorDashboard struct {
	User          *model.User                 `json:"user"`
	Investments   []model.Investment          `json:"investments"`
	TotalInvested float64                     `json:"total_invested"`
	TotalProjects int                         `json:"total_projects"`
	RecentRevenue []model.RevenueDistribution `json:"recent_revenue"`
}

// GetCreatorDashboard 汇总创作者名下项目和投资情况
// total_revenue 取各项目 current_revenue 之和（依赖投资事务维护的汇总字段）
func (d *DashboardLogic) GetCreatorDashboard(userID uint) (*CreatorDashboard, error) {
	var user model.User
	if err := d.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("创作者不存在: %w", ErrNotFound)
		}
		return nil, err
	}
	if user.Role != model.RoleCreator {
		return nil, fmt.Errorf("创作者不存在: %w", ErrNotFound)
	}

	var projects []model.Project
	if err := d.db.Where("creator_id = ?", userID).Find(&projects).Error; err != nil {
		return nil, err
	}

	// 创作者名下所有项目的投资记录，按插入顺序
	var investments []model.Investment
	if err := d.db.Joins("JOIN projects ON projects.id = investments.project_id").
		Where("projects.creator_id = ?", userID).
		Order("investments.id").
		Find(&investments).Error; err != nil {
		return nil, err
	}

	var totalRevenue float64
	for _, project := range projects {
		totalRevenue += project.CurrentRevenue
	}

	// 去重统计投资人数量，同一投资人多次投资只计一次
	investorSet := make(map[uint]struct{})
	for _, inv := range investments {
		investorSet[inv.InvestorID] = struct{}{}
	}

	recent := investments
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}

	return &CreatorDashboard{
		User:              &user,
		Projects:          projects,
		TotalRevenue:      totalRevenue,
		TotalInvestors:    len(investorSet),
		RecentInvestments: recent,
	}, nil
}

// GetInvestorDashboard 汇总投资人的投资情况
// total_invested 直接对投资记录金额求和
func (d *DashboardLogic) GetInvestorDashboard(userID uint) (*InvestorDashboard, error) {
	var user model.User
	if err := d.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("投资人不存在: %w", ErrNotFound)
		}
		return nil, err
	}
	if user.Role != model.RoleInvestor {
		return nil, fmt.Errorf("投资人不存在: %w", ErrNotFound)
	}

	var investments []model.Investment
	if err := d.db.Where("investor_id = ?", userID).Order("id").Find(&investments).Error; err != nil {
		return nil, err
	}

	var totalInvested float64
	projectSet := make(map[uint]struct{})
	for _, inv := range investments {
		totalInvested += inv.Amount
		projectSet[inv.ProjectID] = struct{}{}
	}

	// 投资人所投项目的收益分配记录，最近5条
	// 目前没有任何写入收益分配的入口，结果恒为空
	recentRevenue := []model.RevenueDistribution{}
	if len(projectSet) > 0 {
		projectIDs := make([]uint, 0, len(projectSet))
		for id := range projectSet {
			projectIDs = append(projectIDs, id)
		}
		if err := d.db.Where("project_id IN ?", projectIDs).
			Order("id DESC").
			Limit(5).
			Find(&recentRevenue).Error; err != nil {
			return nil, err
		}
	}

	return &InvestorDashboard{
		User:          &user,
		Investments:   investments,
		TotalInvested: totalInvested,
		TotalProjects: len(projectSet),
		RecentRevenue: recentRevenue,
	}, nil
}
