package model

import (
	"time"
)

// User 平台用户模型（创作者或投资人，以钱包地址为唯一标识）
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	WalletAddress   string   `json:"wallet_address" gorm:"uniqueIndex;not null" binding:"required"`
	Username        *string  `json:"username" gorm:"uniqueIndex"`
	Email           *string  `json:"email" gorm:"uniqueIndex"`
	Role            UserRole `json:"role" gorm:"not null"`
	Bio             string   `json:"bio" gorm:"type:text"`
	ProfileImageURL string   `json:"profile_image_url"`

	// 资金汇总字段，只能由投资事务增量更新
	TotalRevenue  float64 `json:"total_revenue" gorm:"default:0"`
	TotalInvested float64 `json:"total_invested" gorm:"default:0"`

	// 状态
	IsVerified bool `json:"is_verified" gorm:"default:false"`

	// 关联
	Projects    []Project    `json:"projects,omitempty" gorm:"foreignKey:CreatorID"`
	Investments []Investment `json:"investments,omitempty" gorm:"foreignKey:InvestorID"`
}

// UserRole 用户角色
type UserRole string

const (
	RoleCreator  UserRole = "creator"  // 创作者
	RoleInvestor UserRole = "investor" // 投资人
)

// Valid 判断角色是否为合法取值
func (r UserRole) Valid() bool {
	return r == RoleCreator || r == RoleInvestor
}
