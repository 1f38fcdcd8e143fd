package logic

import (
	"testing"

	"github.com/blues/fms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatorDashboard(t *testing.T) {
	db := setupTestDB(t)
	investmentLogic := NewInvestmentLogic(db)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)
	investor := createUser(t, db, "0xB1", model.RoleInvestor)
	project := createProject(t, db, creator.ID, "p", 1000)

	// 同一投资人投两笔，total_investors 不应重复计数
	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: project.ID, Amount: 500, NftTokenID: 1}))
	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: project.ID, Amount: 300, NftTokenID: 1}))

	dashboard, err := dashboardLogic.GetCreatorDashboard(creator.ID)
	require.NoError(t, err)

	assert.Equal(t, 800.0, dashboard.TotalRevenue)
	assert.Equal(t, 1, dashboard.TotalInvestors)
	assert.Len(t, dashboard.RecentInvestments, 2)
	assert.Len(t, dashboard.Projects, 1)
}

func TestCreatorDashboardDistinctInvestors(t *testing.T) {
	db := setupTestDB(t)
	investmentLogic := NewInvestmentLogic(db)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)
	p1 := createProject(t, db, creator.ID, "p1", 0)
	p2 := createProject(t, db, creator.ID, "p2", 0)

	b := createUser(t, db, "0xB1", model.RoleInvestor)
	c := createUser(t, db, "0xC1", model.RoleInvestor)

	require.NoError(t, investmentLogic.CreateInvestment(b.ID, &model.Investment{ProjectID: p1.ID, Amount: 10, NftTokenID: 1}))
	require.NoError(t, investmentLogic.CreateInvestment(b.ID, &model.Investment{ProjectID: p2.ID, Amount: 20, NftTokenID: 2}))
	require.NoError(t, investmentLogic.CreateInvestment(c.ID, &model.Investment{ProjectID: p1.ID, Amount: 30, NftTokenID: 1}))

	dashboard, err := dashboardLogic.GetCreatorDashboard(creator.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, dashboard.TotalInvestors)
	assert.Equal(t, 60.0, dashboard.TotalRevenue)
}

func TestCreatorDashboardRecentInvestmentsLastFive(t *testing.T) {
	db := setupTestDB(t)
	investmentLogic := NewInvestmentLogic(db)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)
	investor := createUser(t, db, "0xB1", model.RoleInvestor)
	project := createProject(t, db, creator.ID, "p", 0)

	for i := 1; i <= 7; i++ {
		require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{
			ProjectID:  project.ID,
			Amount:     float64(i),
			NftTokenID: 1,
		}))
	}

	dashboard, err := dashboardLogic.GetCreatorDashboard(creator.ID)
	require.NoError(t, err)

	// 取插入顺序的最后5条
	require.Len(t, dashboard.RecentInvestments, 5)
	assert.Equal(t, 3.0, dashboard.RecentInvestments[0].Amount)
	assert.Equal(t, 7.0, dashboard.RecentInvestments[4].Amount)
}

func TestCreatorDashboardRoleMismatch(t *testing.T) {
	db := setupTestDB(t)
	dashboardLogic := NewDashboardLogic(db)

	investor := createUser(t, db, "0xB1", model.RoleInvestor)

	_, err := dashboardLogic.GetCreatorDashboard(investor.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = dashboardLogic.GetCreatorDashboard(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvestorDashboard(t *testing.T) {
	db := setupTestDB(t)
	investmentLogic := NewInvestmentLogic(db)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)
	investor := createUser(t, db, "0xB1", model.RoleInvestor)
	p1 := createProject(t, db, creator.ID, "p1", 0)
	p2 := createProject(t, db, creator.ID, "p2", 0)

	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: p1.ID, Amount: 500, NftTokenID: 1}))
	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: p1.ID, Amount: 300, NftTokenID: 1}))
	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: p2.ID, Amount: 200, NftTokenID: 2}))

	dashboard, err := dashboardLogic.GetInvestorDashboard(investor.ID)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, dashboard.TotalInvested)
	assert.Equal(t, 2, dashboard.TotalProjects)
	assert.Len(t, dashboard.Investments, 3)
	assert.Empty(t, dashboard.RecentRevenue)
}

func TestInvestorDashboardZeroInvestments(t *testing.T) {
	db := setupTestDB(t)
	dashboardLogic := NewDashboardLogic(db)

	investor := createUser(t, db, "0xB1", model.RoleInvestor)

	dashboard, err := dashboardLogic.GetInvestorDashboard(investor.ID)
	require.NoError(t, err)

	assert.Zero(t, dashboard.TotalInvested)
	assert.Zero(t, dashboard.TotalProjects)
	assert.Empty(t, dashboard.Investments)
	assert.Empty(t, dashboard.RecentRevenue)
}

func TestInvestorDashboardRoleMismatch(t *testing.T) {
	db := setupTestDB(t)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)

	_, err := dashboardLogic.GetInvestorDashboard(creator.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvestorDashboardRecentRevenue(t *testing.T) {
	db := setupTestDB(t)
	investmentLogic := NewInvestmentLogic(db)
	dashboardLogic := NewDashboardLogic(db)

	creator := createUser(t, db, "0xA1", model.RoleCreator)
	investor := createUser(t, db, "0xB1", model.RoleInvestor)
	project := createProject(t, db, creator.ID, "p", 0)

	require.NoError(t, investmentLogic.CreateInvestment(investor.ID, &model.Investment{ProjectID: project.ID, Amount: 100, NftTokenID: 1}))

	// 直接写入一条收益分配记录（业务上无写入入口，仅验证读取路径）
	txHash := "0xdist1"
	require.NoError(t, db.Create(&model.RevenueDistribution{
		ProjectID:              project.ID,
		Amount:                 50,
		DistributionPercentage: 10,
		TransactionHash:        &txHash,
	}).Error)

	dashboard, err := dashboardLogic.GetInvestorDashboard(investor.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.RecentRevenue, 1)
	assert.Equal(t, 50.0, dashboard.RecentRevenue[0].Amount)
}
