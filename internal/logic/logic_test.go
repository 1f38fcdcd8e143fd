package logic

import (
	"fmt"
	"testing"

	"github.com/blues/fms/internal/database"
	"github.com/blues/fms/internal/model"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 创建每个测试独立的内存数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func createUser(t *testing.T, db *gorm.DB, wallet string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		WalletAddress: wallet,
		Role:          role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createProject(t *testing.T, db *gorm.DB, creatorID uint, name string, target float64) *model.Project {
	t.Helper()

	project := &model.Project{
		Name:          name,
		TargetRevenue: target,
		CreatorID:     creatorID,
		IsActive:      true,
	}
	require.NoError(t, db.Create(project).Error)
	return project
}
