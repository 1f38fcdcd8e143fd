package logic

import (
	"errors"
	"fmt"

	"github.com/blues/fms/internal/auth"
	"github.com/blues/fms/internal/model"
	"gorm.io/gorm"
)

// AuthLogic 注册登录业务逻辑
type AuthLogic struct {
	db           *gorm.DB
	tokenManager *auth.TokenManager
}

// NewAuthLogic 创建注册登录业务逻辑
func NewAuthLogic(db *gorm.DB, tokenManager *auth.TokenManager) *AuthLogic {
	return &AuthLogic{db: db, tokenManager: tokenManager}
}

// Register 注册新用户并签发访问令牌
// 登录凭证只有钱包地址，不校验钱包签名
func (a *AuthLogic) Register(user *model.User) (string, error) {
	// 检查钱包地址是否已注册
	var existing model.User
	err := a.db.Where("wallet_address = ?", user.WalletAddress).First(&existing).Error
	if err == nil {
		return "", fmt.Errorf("用户已注册: %w", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	// 创建用户
	if err := a.db.Create(user).Error; err != nil {
		return "", err
	}

	return a.tokenManager.Generate(user.ID)
}

// Login 按钱包地址查找用户并签发新令牌
func (a *AuthLogic) Login(walletAddress string) (string, *model.User, error) {
	var user model.User
	if err := a.db.Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("用户不存在: %w", ErrNotFound)
		}
		return "", nil, err
	}

	token, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
