package task

import (
	"math"
	"sync"
	"time"

	"github.com/blues/fms/internal/config"
	"github.com/blues/fms/internal/logger"
	"github.com/blues/fms/internal/model"
	"github.com/go-co-op/gocron/v2"
	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
)

// 浮点汇总比较容差
const driftEpsilon = 1e-6

// AggregateAuditJob 汇总字段审计任务
// 对照投资记录重算各项目/各用户的汇总字段，发现偏差只告警不修复，
// 增量更新路径（投资事务）保持唯一写入方
type AggregateAuditJob struct {
	db     *gorm.DB
	config *config.Config
}

// NewAggregateAuditJob 创建汇总字段审计任务
func NewAggregateAuditJob(db *gorm.DB, cfg *config.Config) *AggregateAuditJob {
	return &AggregateAuditJob{
		db:     db,
		config: cfg,
	}
}

// GetName 获取任务名称
func (j *AggregateAuditJob) GetName() string {
	return "aggregate_audit"
}

// GetSchedule 获取调度配置
func (j *AggregateAuditJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.AuditInterval) * time.Second)
}

// Execute 执行任务
func (j *AggregateAuditJob) Execute() {
	logger.Info("Starting aggregate audit task")

	projectDrift := j.AuditProjects()
	userDrift := j.AuditUsers()

	if projectDrift == 0 && userDrift == 0 {
		logger.Info("Aggregate audit completed, no drift found")
	} else {
		logger.Warn("Aggregate audit completed, drifted projects: %d, drifted users: %d",
			projectDrift, userDrift)
	}
}

// AuditProjects 重算各项目的投资总额并与 current_revenue 对比，返回偏差项目数
func (j *AggregateAuditJob) AuditProjects() int {
	var projects []model.Project
	if err := j.db.Find(&projects).Error; err != nil {
		logger.Error("Failed to fetch projects for audit: %v", err)
		return 0
	}

	if len(projects) == 0 {
		return 0
	}

	// 协程池并发重算每个项目
	pool, err := ants.NewPool(len(projects))
	if err != nil {
		logger.Error("Failed to create audit pool for %d projects: %v", len(projects), err)
		return 0
	}
	defer pool.Release()

	var mu sync.Mutex
	var wg sync.WaitGroup
	driftCount := 0

	for _, project := range projects {
		project := project
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()

			var actual float64
			if err := j.db.Model(&model.Investment{}).
				Where("project_id = ?", project.ID).
				Select("COALESCE(SUM(amount), 0)").
				Scan(&actual).Error; err != nil {
				logger.Error("Failed to recompute revenue for project %d: %v", project.ID, err)
				return
			}

			if math.Abs(actual-project.CurrentRevenue) > driftEpsilon {
				logger.Warn("Project %d current_revenue drifted: stored=%f, recomputed=%f",
					project.ID, project.CurrentRevenue, actual)
				mu.Lock()
				driftCount++
				mu.Unlock()
			}
		})
		if err != nil {
			wg.Done()
			logger.Error("Failed to submit audit task for project %d: %v", project.ID, err)
		}
	}

	wg.Wait()
	return driftCount
}

// AuditUsers 重算各用户的累计投资额/累计收入并与存储值对比，返回偏差用户数
func (j *AggregateAuditJob) AuditUsers() int {
	var users []model.User
	if err := j.db.Find(&users).Error; err != nil {
		logger.Error("Failed to fetch users for audit: %v", err)
		return 0
	}

	driftCount := 0
	for _, user := range users {
		drifted := false

		switch user.Role {
		case model.RoleInvestor:
			var invested float64
			if err := j.db.Model(&model.Investment{}).
				Where("investor_id = ?", user.ID).
				Select("COALESCE(SUM(amount), 0)").
				Scan(&invested).Error; err != nil {
				logger.Error("Failed to recompute total_invested for user %d: %v", user.ID, err)
				continue
			}
			if math.Abs(invested-user.TotalInvested) > driftEpsilon {
				logger.Warn("User %d total_invested drifted: stored=%f, recomputed=%f",
					user.ID, user.TotalInvested, invested)
				drifted = true
			}
		case model.RoleCreator:
			var revenue float64
			if err := j.db.Model(&model.Investment{}).
				Joins("JOIN projects ON projects.id = investments.project_id").
				Where("projects.creator_id = ?", user.ID).
				Select("COALESCE(SUM(investments.amount), 0)").
				Scan(&revenue).Error; err != nil {
				logger.Error("Failed to recompute total_revenue for user %d: %v", user.ID, err)
				continue
			}
			if math.Abs(revenue-user.TotalRevenue) > driftEpsilon {
				logger.Warn("User %d total_revenue drifted: stored=%f, recomputed=%f",
					user.ID, user.TotalRevenue, revenue)
				drifted = true
			}
		}

		if drifted {
			driftCount++
		}
	}

	return driftCount
}
