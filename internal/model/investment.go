package model

import (
	"time"
)

// Investment 投资记录，创建后不可修改、不可删除
type Investment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	Amount          float64 `json:"amount" gorm:"not null"`
	NftTokenID      int64   `json:"nft_token_id" gorm:"not null"`
	TransactionHash *string `json:"transaction_hash" gorm:"uniqueIndex"`

	InvestorID uint `json:"investor_id" gorm:"not null;index"`
	ProjectID  uint `json:"project_id" gorm:"not null;index"`

	// 关联
	Investor *User    `json:"investor,omitempty" gorm:"foreignKey:InvestorID"`
	Project  *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
}
