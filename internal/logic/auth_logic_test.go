package logic

import (
	"testing"
	"time"

	"github.com/blues/fms/internal/auth"
	"github.com/blues/fms/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIssuesParsableToken(t *testing.T) {
	db := setupTestDB(t)
	tokenManager := auth.NewTokenManager("test-secret", 30*time.Minute)
	authLogic := NewAuthLogic(db, tokenManager)

	user := &model.User{
		WalletAddress: "0xA1",
		Role:          model.RoleCreator,
	}
	token, err := authLogic.Register(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotZero(t, user.ID)

	userID, err := tokenManager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestRegisterDuplicateWalletConflict(t *testing.T) {
	db := setupTestDB(t)
	tokenManager := auth.NewTokenManager("test-secret", 30*time.Minute)
	authLogic := NewAuthLogic(db, tokenManager)

	_, err := authLogic.Register(&model.User{WalletAddress: "0xA1", Role: model.RoleCreator})
	require.NoError(t, err)

	_, err = authLogic.Register(&model.User{WalletAddress: "0xA1", Role: model.RoleInvestor})
	assert.ErrorIs(t, err, ErrConflict)

	// 冲突时不应新增记录
	var count int64
	require.NoError(t, db.Model(&model.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLoginUnknownWalletNotFound(t *testing.T) {
	db := setupTestDB(t)
	tokenManager := auth.NewTokenManager("test-secret", 30*time.Minute)
	authLogic := NewAuthLogic(db, tokenManager)

	token, user, err := authLogic.Login("0xDEAD")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestLoginIssuesFreshToken(t *testing.T) {
	db := setupTestDB(t)
	tokenManager := auth.NewTokenManager("test-secret", 30*time.Minute)
	authLogic := NewAuthLogic(db, tokenManager)

	registered := &model.User{WalletAddress: "0xB1", Role: model.RoleInvestor}
	_, err := authLogic.Register(registered)
	require.NoError(t, err)

	token, user, err := authLogic.Login("0xB1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Equal(t, registered.ID, user.ID)

	userID, err := tokenManager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
}
