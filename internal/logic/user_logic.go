package logic

import (
	"errors"
	"fmt"

	"github.com/blues/fms/internal/model"
	"gorm.io/gorm"
)

// UserLogic 用户业务逻辑
type UserLogic struct {
	db *gorm.DB
}

// NewUserLogic 创建用户业务逻辑
func NewUserLogic(db *gorm.DB) *UserLogic {
	return &UserLogic{db: db}
}

// UserPatch 用户部分更新字段，nil表示调用方未提供该字段
// 汇总字段（total_revenue/total_invested）不在此列，只能由投资事务更新
type UserPatch struct {
	Username        *string `json:"username"`
	Email           *string `json:"email"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// GetUserByWallet 按钱包地址获取用户
func (u *UserLogic) GetUserByWallet(walletAddress string) (*model.User, error) {
	var user model.User
	if err := u.db.Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("用户不存在: %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID 按ID获取用户
func (u *UserLogic) GetUserByID(id uint) (*model.User, error) {
	var user model.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("用户不存在: %w", ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers 分页获取用户列表
func (u *UserLogic) ListUsers(skip, limit int) ([]model.User, error) {
	var users []model.User
	if err := u.db.Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser 按调用方提供的字段部分更新用户，未提供的字段保持不变
func (u *UserLogic) UpdateUser(id uint, patch *UserPatch) (*model.User, error) {
	var user model.User
	if err := u.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("用户不存在: %w", ErrNotFound)
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Username != nil {
		updates["username"] = *patch.Username
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Bio != nil {
		updates["bio"] = *patch.Bio
	}
	if patch.ProfileImageURL != nil {
		updates["profile_image_url"] = *patch.ProfileImageURL
	}

	if len(updates) > 0 {
		if err := u.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}
