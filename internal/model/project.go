package model

import (
	"time"
)

// Project 创作者项目模型
type Project struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 基本信息
	Name        string `json:"name" gorm:"not null" binding:"required"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`

	// 募资信息：target_revenue 仅作展示目标，current_revenue 由投资事务增量维护
	TargetRevenue  float64 `json:"target_revenue"`
	CurrentRevenue float64 `json:"current_revenue" gorm:"default:0"`

	// 区块链信息（仅作不透明标识保存，不做链上校验）
	NftTokenID         *int64 `json:"nft_token_id" gorm:"uniqueIndex"`
	NftContractAddress string `json:"nft_contract_address"`

	// 状态：软删除标记，下架后仍可按ID查询
	IsActive bool `json:"is_active" gorm:"default:true"`

	// 创建者信息
	CreatorID uint `json:"creator_id" gorm:"not null;index"`

	// 关联
	Creator     *User        `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Investments []Investment `json:"investments,omitempty" gorm:"foreignKey:ProjectID"`
}
