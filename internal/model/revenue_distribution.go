package model

import (
	"time"
)

// RevenueDistribution 收益分配记录
type RevenueDistribution struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	ProjectID              uint    `json:"project_id" gorm:"not null;index"`
	Amount                 float64 `json:"amount" gorm:"not null"`
	DistributionPercentage float64 `json:"distribution_percentage" gorm:"not null"`
	TransactionHash        *string `json:"transaction_hash" gorm:"uniqueIndex"`

	// 关联
	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
